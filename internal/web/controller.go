package web

import (
	_ "embed"
	"html/template"
	"net/http"

	"sql-console/configs"
)

//go:embed console.html
var consoleHTML string

var consoleTmpl = template.Must(template.New("console").Parse(consoleHTML))

type ControllerDeps struct {
	Config *configs.Config
}

type Controller struct {
	config *configs.Config
}

func NewController(router *http.ServeMux, deps ControllerDeps) *Controller {
	controller := &Controller{
		config: deps.Config,
	}

	router.Handle("GET /{$}", controller.Home())

	return controller
}

func (controller *Controller) Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := map[string]any{
			"BrowseRowLimit": controller.config.BrowseRowLimit,
		}
		if err := consoleTmpl.Execute(w, data); err != nil {
			http.Error(w, "Unable to render page", http.StatusInternalServerError)
		}
	}
}
