package console

import "strings"

type ConnectRequest struct {
	DSN     string `json:"dsn" validate:"required"`
	SSLMode string `json:"sslmode,omitempty"`
}

type ViewTableRequest struct {
	DSN     string `json:"dsn" validate:"required"`
	SSLMode string `json:"sslmode,omitempty"`
	Table   string `json:"table" validate:"required"`
}

type RunSQLRequest struct {
	DSN     string `json:"dsn" validate:"required"`
	SSLMode string `json:"sslmode,omitempty"`
	SQL     string `json:"sql" validate:"required"`
}

type DeleteRowRequest struct {
	DSN     string            `json:"dsn" validate:"required"`
	SSLMode string            `json:"sslmode,omitempty"`
	Table   string            `json:"table" validate:"required"`
	Row     map[string]string `json:"row" validate:"required"`
}

// TableRef identifies a browsable relation as schema.name.
type TableRef struct {
	Schema string `json:"schema"`
	Name   string `json:"name"`
}

func (t TableRef) String() string {
	return t.Schema + "." + t.Name
}

// ParseTableRef splits a "schema.table" value from the table list. A bare
// name falls back to the public schema.
func ParseTableRef(value string) TableRef {
	if schema, name, ok := strings.Cut(value, "."); ok {
		return TableRef{Schema: schema, Name: name}
	}
	return TableRef{Schema: "public", Name: value}
}

// QueryResult is the raw outcome of one execution. Exactly one side is
// populated: Columns/Rows for a query, Status for a command tag.
type QueryResult struct {
	Kind    StatementKind
	Columns []string
	Rows    [][]any
	Status  string
}

// CellKind tags a rendered value so the presentation layer never touches
// driver types.
type CellKind string

const (
	CellString CellKind = "string"
	CellNumber CellKind = "number"
	CellBool   CellKind = "bool"
	CellNull   CellKind = "null"
	CellOther  CellKind = "other"
)

// Cell is one rendered value. A SQL NULL has kind CellNull and empty text,
// which keeps it distinguishable from an empty string.
type Cell struct {
	Kind CellKind `json:"kind"`
	Text string   `json:"text"`
}

// PresentationModel is the only structure the page depends on.
type PresentationModel struct {
	Columns []string `json:"columns,omitempty"`
	Rows    [][]Cell `json:"rows,omitempty"`
	Status  string   `json:"status,omitempty"`
}

type ConnectResponse struct {
	Tables  []TableRef `json:"tables"`
	Message string     `json:"message"`
}

type ViewTableResponse struct {
	Table   TableRef          `json:"table"`
	Tables  []TableRef        `json:"tables"`
	Result  PresentationModel `json:"result"`
	Message string            `json:"message"`
}

type RunSQLResponse struct {
	Tables  []TableRef        `json:"tables"`
	Result  PresentationModel `json:"result"`
	Message string            `json:"message"`
}

type DeleteRowResponse struct {
	Table   TableRef          `json:"table"`
	Tables  []TableRef        `json:"tables"`
	Deleted int               `json:"deleted"`
	Result  PresentationModel `json:"result"`
	Message string            `json:"message"`
}
