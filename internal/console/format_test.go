package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Command(t *testing.T) {
	model := Format(&QueryResult{Kind: KindCommand, Status: "UPDATE 3"})

	assert.Equal(t, "UPDATE 3", model.Status)
	assert.Empty(t, model.Columns)
	assert.Empty(t, model.Rows)
}

func TestFormat_TabularRoundTrip(t *testing.T) {
	result := &QueryResult{
		Kind:    KindQuery,
		Columns: []string{"id", "name", "active"},
		Rows: [][]any{
			{int64(1), "alice", true},
			{int64(2), "bob", false},
			{int64(3), nil, true},
		},
	}

	model := Format(result)

	require.Len(t, model.Columns, 3)
	require.Len(t, model.Rows, 3)
	assert.Equal(t, []string{"id", "name", "active"}, model.Columns)

	assert.Equal(t, Cell{Kind: CellNumber, Text: "1"}, model.Rows[0][0])
	assert.Equal(t, Cell{Kind: CellString, Text: "alice"}, model.Rows[0][1])
	assert.Equal(t, Cell{Kind: CellBool, Text: "true"}, model.Rows[0][2])
	assert.Equal(t, Cell{Kind: CellNumber, Text: "2"}, model.Rows[1][0])
	assert.Equal(t, Cell{Kind: CellNull, Text: ""}, model.Rows[2][1])
}

func TestFormat_NullDistinctFromEmptyString(t *testing.T) {
	result := &QueryResult{
		Kind:    KindQuery,
		Columns: []string{"a", "b"},
		Rows:    [][]any{{nil, ""}},
	}

	model := Format(result)

	null := model.Rows[0][0]
	empty := model.Rows[0][1]
	assert.Equal(t, CellNull, null.Kind)
	assert.Equal(t, CellString, empty.Kind)
	assert.Equal(t, null.Text, empty.Text, "both render as empty text; the kind carries the difference")
	assert.NotEqual(t, null.Kind, empty.Kind)
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  Cell
	}{
		{"nil", nil, Cell{Kind: CellNull}},
		{"string", "hello", Cell{Kind: CellString, Text: "hello"}},
		{"empty string", "", Cell{Kind: CellString, Text: ""}},
		{"bool", true, Cell{Kind: CellBool, Text: "true"}},
		{"int16", int16(7), Cell{Kind: CellNumber, Text: "7"}},
		{"int32", int32(42), Cell{Kind: CellNumber, Text: "42"}},
		{"int64", int64(-9), Cell{Kind: CellNumber, Text: "-9"}},
		{"float64", 3.5, Cell{Kind: CellNumber, Text: "3.5"}},
		{"utf8 bytes", []byte("raw"), Cell{Kind: CellString, Text: "raw"}},
		{"binary bytes", []byte{0xff, 0xfe}, Cell{Kind: CellOther, Text: "\\xfffe"}},
		{"time", ts, Cell{Kind: CellOther, Text: "2024-03-01T12:30:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}
