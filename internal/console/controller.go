package console

import (
	"errors"
	"net/http"

	"sql-console/pkg/db"
	"sql-console/pkg/req"
	"sql-console/pkg/res"
)

type ControllerDeps struct {
	*Service
}

type Controller struct {
	*Service
}

func NewController(router *http.ServeMux, deps ControllerDeps) *Controller {
	c := &Controller{Service: deps.Service}

	router.Handle("POST /connect", c.Connect())
	router.Handle("POST /tables/view", c.ViewTable())
	router.Handle("POST /tables/delete-row", c.DeleteRow())
	router.Handle("POST /sql", c.RunSQL())

	return c
}

func (c *Controller) Connect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[ConnectRequest](&w, r)
		if err != nil {
			return
		}

		out, err := c.Service.Connect(r.Context(), body)
		if err != nil {
			writeError(w, err)
			return
		}

		res.Json(w, out, http.StatusOK)
	}
}

func (c *Controller) ViewTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[ViewTableRequest](&w, r)
		if err != nil {
			return
		}

		out, err := c.Service.ViewTable(r.Context(), body)
		if err != nil {
			writeError(w, err)
			return
		}

		res.Json(w, out, http.StatusOK)
	}
}

func (c *Controller) RunSQL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[RunSQLRequest](&w, r)
		if err != nil {
			return
		}

		out, err := c.Service.RunSQL(r.Context(), body)
		if err != nil {
			writeError(w, err)
			return
		}

		res.Json(w, out, http.StatusOK)
	}
}

func (c *Controller) DeleteRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := req.HandleBody[DeleteRowRequest](&w, r)
		if err != nil {
			return
		}

		out, err := c.Service.DeleteRow(r.Context(), body)
		if err != nil {
			writeError(w, err)
			return
		}

		res.Json(w, out, http.StatusOK)
	}
}

// writeError maps the failure taxonomy onto status codes. Catalog and
// execution failures carry the database's own diagnostic text.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest

	var connErr *db.ConnectError
	if errors.As(err, &connErr) {
		status = http.StatusBadGateway
	}
	var notFound *TableNotFoundError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
	}

	res.Json(w, map[string]any{"error": err.Error()}, status)
}
