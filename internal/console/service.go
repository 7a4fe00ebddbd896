package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"sql-console/pkg/db"
)

// ErrEmptySQL rejects whitespace-only console input before classification.
var ErrEmptySQL = errors.New("sql text is required")

// TableNotFoundError rejects view/delete targets that are not in the table
// list loaded within the same operation.
type TableNotFoundError struct {
	Ref TableRef
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %s not found or not allowed", e.Ref)
}

type Service struct {
	repo        *Repository
	browseLimit int
	withConn    func(ctx context.Context, cfg db.Config, fn func(q Querier) error) error
}

func NewService(repo *Repository, browseLimit int) *Service {
	return &Service{
		repo:        repo,
		browseLimit: browseLimit,
		withConn:    dialConn,
	}
}

func dialConn(ctx context.Context, cfg db.Config, fn func(q Querier) error) error {
	return db.WithConn(ctx, cfg, func(conn *pgx.Conn) error {
		return fn(conn)
	})
}

// Connect resolves the DSN, opens a connection, and loads the table list.
func (s *Service) Connect(ctx context.Context, body *ConnectRequest) (*ConnectResponse, error) {
	cfg, err := db.Resolve(body.DSN, body.SSLMode)
	if err != nil {
		return nil, err
	}

	var tables []TableRef
	err = s.withConn(ctx, cfg, func(q Querier) error {
		tables, err = s.repo.ListTables(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ConnectResponse{Tables: tables, Message: "Connected. Tables loaded."}, nil
}

// ViewTable shows the first rows of one catalog table, capped at the browse
// limit. The target must be present in the freshly loaded table list.
func (s *Service) ViewTable(ctx context.Context, body *ViewTableRequest) (*ViewTableResponse, error) {
	cfg, err := db.Resolve(body.DSN, body.SSLMode)
	if err != nil {
		return nil, err
	}
	ref := ParseTableRef(body.Table)

	var (
		tables []TableRef
		result *QueryResult
	)
	err = s.withConn(ctx, cfg, func(q Querier) error {
		tables, err = s.repo.ListTables(ctx, q)
		if err != nil {
			return err
		}
		if !containsTable(tables, ref) {
			return &TableNotFoundError{Ref: ref}
		}
		result, err = s.repo.BrowseTable(ctx, q, ref, s.browseLimit)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ViewTableResponse{
		Table:   ref,
		Tables:  tables,
		Result:  Format(result),
		Message: fmt.Sprintf("Showing first %d rows from %s", len(result.Rows), ref),
	}, nil
}

// RunSQL executes the submitted text verbatim. The console path is a SQL
// console: whatever the user typed is what runs.
func (s *Service) RunSQL(ctx context.Context, body *RunSQLRequest) (*RunSQLResponse, error) {
	sqlText := strings.TrimSpace(body.SQL)
	if sqlText == "" {
		return nil, ErrEmptySQL
	}

	cfg, err := db.Resolve(body.DSN, body.SSLMode)
	if err != nil {
		return nil, err
	}

	var (
		tables []TableRef
		result *QueryResult
	)
	err = s.withConn(ctx, cfg, func(q Querier) error {
		tables, err = s.repo.ListTables(ctx, q)
		if err != nil {
			return err
		}
		result, err = s.repo.Run(ctx, q, sqlText, 0)
		return err
	})
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Statement OK: %s", result.Status)
	if result.Kind == KindQuery {
		message = fmt.Sprintf("Query OK, %d rows returned.", len(result.Rows))
	}

	return &RunSQLResponse{Tables: tables, Result: Format(result), Message: message}, nil
}

// DeleteRow removes one browsed row by full-column text match and reloads the
// table so the page shows the result of the delete.
func (s *Service) DeleteRow(ctx context.Context, body *DeleteRowRequest) (*DeleteRowResponse, error) {
	cfg, err := db.Resolve(body.DSN, body.SSLMode)
	if err != nil {
		return nil, err
	}
	ref := ParseTableRef(body.Table)

	var (
		tables  []TableRef
		result  *QueryResult
		deleted int
	)
	err = s.withConn(ctx, cfg, func(q Querier) error {
		tables, err = s.repo.ListTables(ctx, q)
		if err != nil {
			return err
		}
		if !containsTable(tables, ref) {
			return &TableNotFoundError{Ref: ref}
		}
		deleted, err = s.repo.DeleteRow(ctx, q, ref, body.Row)
		if err != nil {
			return err
		}
		result, err = s.repo.BrowseTable(ctx, q, ref, s.browseLimit)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &DeleteRowResponse{
		Table:   ref,
		Tables:  tables,
		Deleted: deleted,
		Result:  Format(result),
		Message: fmt.Sprintf("Deleted %d row(s) from %s", deleted, ref),
	}, nil
}

func containsTable(tables []TableRef, ref TableRef) bool {
	for _, t := range tables {
		if t == ref {
			return true
		}
	}
	return false
}
