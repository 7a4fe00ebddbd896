package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want StatementKind
	}{
		{"select", "SELECT id FROM t", KindQuery},
		{"select lowercase", "select 1", KindQuery},
		{"select mixed case", "SeLeCt * from t", KindQuery},
		{"select with leading whitespace", "   \n\t select 1", KindQuery},
		{"with cte", "WITH x AS (SELECT 1) SELECT * FROM x", KindQuery},
		{"with lowercase", "with recursive t as (select 1) select * from t", KindQuery},
		{"update", "update t set x=1", KindCommand},
		{"insert", "INSERT INTO t VALUES (1)", KindCommand},
		{"delete", "DELETE FROM t", KindCommand},
		{"create", "CREATE TABLE t (id int)", KindCommand},
		{"explain degrades to command", "EXPLAIN SELECT 1", KindCommand},
		{"call degrades to command", "CALL do_things()", KindCommand},
		{"empty", "", KindCommand},
		{"whitespace only", "  \n\t ", KindCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sql))
		})
	}
}

func TestStatementKind_String(t *testing.T) {
	assert.Equal(t, "query", KindQuery.String())
	assert.Equal(t, "command", KindCommand.String())
}
