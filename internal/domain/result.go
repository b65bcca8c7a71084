package domain

import (
	"strconv"
	"time"
)

// ResultRow maps a column name to a scalar cell value. Cells are whatever
// the backend produced: string, int64, float64, time.Time or nil.
type ResultRow map[string]interface{}

// ResultTable is an ordered set of rows sharing one column set. Column
// order follows the query's SELECT list, row order the query's ORDER BY.
type ResultTable struct {
	Columns []string
	Rows    []ResultRow
}

// String renders the cell as text. Dates come back as time.Time from pgx
// and as text from Athena; both end up in yyyy-mm-dd form.
func (r ResultRow) String(col string) string {
	switch v := r[col].(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Float converts the cell to float64, nil cells and unparseable text
// become 0.
func (r ResultRow) Float(col string) float64 {
	if f := r.NullFloat(col); f != nil {
		return *f
	}
	return 0
}

// NullFloat converts the cell to *float64, keeping nil cells nil.
func (r ResultRow) NullFloat(col string) *float64 {
	switch v := r[col].(type) {
	case float64:
		return &v
	case int64:
		f := float64(v)
		return &f
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Int converts the cell to int64, nil and unparseable cells become 0.
func (r ResultRow) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
