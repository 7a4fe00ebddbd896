package console

import "strings"

// StatementKind says whether a statement yields rows or a command status.
type StatementKind int

const (
	KindCommand StatementKind = iota
	KindQuery
)

func (k StatementKind) String() string {
	if k == KindQuery {
		return "query"
	}
	return "command"
}

// Classify inspects the first keyword of the submitted SQL. SELECT and WITH
// mean rows; everything else gets a command tag. This is a heuristic, not a
// parser: EXPLAIN and set-returning calls degrade to a status string.
func Classify(sqlText string) StatementKind {
	fields := strings.Fields(sqlText)
	if len(fields) == 0 {
		return KindCommand
	}
	if strings.EqualFold(fields[0], "SELECT") || strings.EqualFold(fields[0], "WITH") {
		return KindQuery
	}
	return KindCommand
}
