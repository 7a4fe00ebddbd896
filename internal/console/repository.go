package console

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sql-console/pkg/db"
)

// Querier is the subset of a pgx connection the console needs. It keeps the
// repository testable against a mocked connection.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const listTablesSQL = `
SELECT table_schema, table_name
FROM information_schema.tables
WHERE table_type = 'BASE TABLE'
  AND table_schema NOT IN ('pg_catalog', 'information_schema')
ORDER BY table_schema, table_name`

type Repository struct {
}

func NewRepository() *Repository {
	return &Repository{}
}

// ListTables enumerates user base tables, ordered by schema then name. An
// empty database yields an empty list, not an error.
func (r *Repository) ListTables(ctx context.Context, q Querier) ([]TableRef, error) {
	rows, err := q.Query(ctx, listTablesSQL)
	if err != nil {
		return nil, &db.CatalogError{Err: err}
	}
	defer rows.Close()

	tables := make([]TableRef, 0, 16)
	for rows.Next() {
		var t TableRef
		if err := rows.Scan(&t.Schema, &t.Name); err != nil {
			return nil, &db.CatalogError{Err: err}
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.CatalogError{Err: err}
	}

	return tables, nil
}

// Run executes free-form SQL. Queries come back as columns and rows; anything
// else comes back as the driver's command tag. rowCap > 0 bounds how many
// rows are materialized; zero means all of them.
func (r *Repository) Run(ctx context.Context, q Querier, sqlText string, rowCap int) (*QueryResult, error) {
	if Classify(sqlText) == KindQuery {
		return r.runQuery(ctx, q, sqlText, rowCap)
	}

	tag, err := q.Exec(ctx, sqlText)
	if err != nil {
		return nil, &db.ExecError{Err: err}
	}
	return &QueryResult{Kind: KindCommand, Status: tag.String()}, nil
}

// BrowseTable is a capped query over one table. The identifiers come from
// catalog data, so they are quoted; the free-form console path never is.
func (r *Repository) BrowseTable(ctx context.Context, q Querier, ref TableRef, limit int) (*QueryResult, error) {
	stmt := fmt.Sprintf("SELECT * FROM %s.%s LIMIT %d",
		quoteIdent(ref.Schema), quoteIdent(ref.Name), limit)
	return r.runQuery(ctx, q, stmt, limit)
}

// DeleteRow removes the rows whose every column matches the browsed row's
// text rendering, and reports how many went away.
func (r *Repository) DeleteRow(ctx context.Context, q Querier, ref TableRef, row map[string]string) (int, error) {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	conds := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		conds = append(conds, fmt.Sprintf("%s::text = $%d", quoteIdent(col), i+1))
		args = append(args, row[col])
	}

	where := "TRUE"
	if len(conds) > 0 {
		where = strings.Join(conds, " AND ")
	}
	stmt := fmt.Sprintf("DELETE FROM %s.%s WHERE %s RETURNING *",
		quoteIdent(ref.Schema), quoteIdent(ref.Name), where)

	rows, err := q.Query(ctx, stmt, args...)
	if err != nil {
		return 0, &db.ExecError{Err: err}
	}
	defer rows.Close()

	deleted := 0
	for rows.Next() {
		deleted++
	}
	if err := rows.Err(); err != nil {
		return 0, &db.ExecError{Err: err}
	}

	return deleted, nil
}

func (r *Repository) runQuery(ctx context.Context, q Querier, sqlText string, rowCap int) (*QueryResult, error) {
	rows, err := q.Query(ctx, sqlText)
	if err != nil {
		return nil, &db.ExecError{Err: err}
	}
	defer rows.Close()

	descs := rows.FieldDescriptions()
	columns := make([]string, len(descs))
	for i, d := range descs {
		columns[i] = d.Name
	}

	out := make([][]any, 0, 64)
	for rows.Next() {
		if rowCap > 0 && len(out) >= rowCap {
			break
		}
		values, err := rows.Values()
		if err != nil {
			return nil, &db.ExecError{Err: err}
		}
		row := make([]any, len(values))
		copy(row, values)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.ExecError{Err: err}
	}

	return &QueryResult{Kind: KindQuery, Columns: columns, Rows: out}, nil
}

// quoteIdent quotes a SQL identifier for Postgres.
func quoteIdent(part string) string {
	return `"` + strings.ReplaceAll(part, `"`, `""`) + `"`
}
