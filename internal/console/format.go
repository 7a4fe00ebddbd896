package console

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Format converts an execution outcome into the model the page renders.
func Format(result *QueryResult) PresentationModel {
	if result.Kind == KindCommand {
		return PresentationModel{Status: result.Status}
	}

	rows := make([][]Cell, len(result.Rows))
	for i, raw := range result.Rows {
		cells := make([]Cell, len(raw))
		for j, value := range raw {
			cells[j] = formatValue(value)
		}
		rows[i] = cells
	}

	return PresentationModel{Columns: result.Columns, Rows: rows}
}

func formatValue(value any) Cell {
	switch v := value.(type) {
	case nil:
		return Cell{Kind: CellNull}
	case bool:
		return Cell{Kind: CellBool, Text: strconv.FormatBool(v)}
	case string:
		return Cell{Kind: CellString, Text: v}
	case []byte:
		if utf8.Valid(v) {
			return Cell{Kind: CellString, Text: string(v)}
		}
		return Cell{Kind: CellOther, Text: fmt.Sprintf("\\x%x", v)}
	case int:
		return Cell{Kind: CellNumber, Text: strconv.Itoa(v)}
	case int16:
		return Cell{Kind: CellNumber, Text: strconv.FormatInt(int64(v), 10)}
	case int32:
		return Cell{Kind: CellNumber, Text: strconv.FormatInt(int64(v), 10)}
	case int64:
		return Cell{Kind: CellNumber, Text: strconv.FormatInt(v, 10)}
	case float32:
		return Cell{Kind: CellNumber, Text: strconv.FormatFloat(float64(v), 'g', -1, 32)}
	case float64:
		return Cell{Kind: CellNumber, Text: strconv.FormatFloat(v, 'g', -1, 64)}
	case time.Time:
		return Cell{Kind: CellOther, Text: v.Format(time.RFC3339Nano)}
	default:
		return Cell{Kind: CellOther, Text: fmt.Sprint(v)}
	}
}
