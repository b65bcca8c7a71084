package reshape

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Cell is one long-form observation fed into Pivot: a row identity, the
// category that becomes a column, and the measured value.
type Cell struct {
	Index  []string
	Column string
	Value  *float64
}

// PivotRow is one output row of a pivot: the retained key columns plus a
// value per spread column. Missing combinations stay nil, they are never
// dropped.
type PivotRow struct {
	Keys   []string
	Values map[string]*float64
	// Diff is max minus min across the value columns, nil when fewer
	// than two values are present. Filled by ComputeRangeDiff.
	Diff *float64
}

// Value returns the cell for a spread column, nil when absent.
func (r *PivotRow) Value(column string) *float64 {
	return r.Values[column]
}

// PivotTable is a long-form table re-keyed so one column's distinct
// values became columns of their own.
type PivotTable struct {
	IndexColumns []string
	ValueColumns []string
	Rows         []*PivotRow
}

// Pivot spreads the cells' Column values into columns. Row and column
// order follow first appearance in the input; duplicate cells keep the
// first non-nil value.
func Pivot(indexColumns []string, cells []Cell) *PivotTable {
	table := &PivotTable{IndexColumns: indexColumns}

	rowsByKey := make(map[string]*PivotRow)
	seenColumns := make(map[string]bool)

	for _, cell := range cells {
		key := strings.Join(cell.Index, "\x1f")

		row, ok := rowsByKey[key]
		if !ok {
			row = &PivotRow{
				Keys:   append([]string(nil), cell.Index...),
				Values: make(map[string]*float64),
			}
			rowsByKey[key] = row
			table.Rows = append(table.Rows, row)
		}

		if !seenColumns[cell.Column] {
			seenColumns[cell.Column] = true
			table.ValueColumns = append(table.ValueColumns, cell.Column)
		}

		// first non-nil value wins on duplicates
		if existing := row.Values[cell.Column]; existing == nil && cell.Value != nil {
			row.Values[cell.Column] = cell.Value
		}
	}

	return table
}

// ComputeRangeDiff derives, per row, the spread between the largest and
// smallest value across the spread columns, skipping nils. Rows with
// fewer than two values keep a nil diff rather than a zero.
func (t *PivotTable) ComputeRangeDiff() {
	for _, row := range t.Rows {
		var min, max *decimal.Decimal
		for _, col := range t.ValueColumns {
			v := row.Values[col]
			if v == nil {
				continue
			}
			d := decimal.NewFromFloat(*v)
			if min == nil || d.LessThan(*min) {
				min = &d
			}
			if max == nil || d.GreaterThan(*max) {
				max = &d
			}
		}

		nonNil := 0
		for _, col := range t.ValueColumns {
			if row.Values[col] != nil {
				nonNil++
			}
		}
		if nonNil < 2 {
			row.Diff = nil
			continue
		}

		diff := max.Sub(*min).InexactFloat64()
		row.Diff = &diff
	}
}

// TopNByDiff selects the n rows with the largest diff. The sort is
// stable, so ties keep their original row order; rows without a diff are
// skipped.
func (t *PivotTable) TopNByDiff(n int) []*PivotRow {
	withDiff := make([]*PivotRow, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Diff != nil {
			withDiff = append(withDiff, row)
		}
	}

	sort.SliceStable(withDiff, func(i, j int) bool {
		return *withDiff[i].Diff > *withDiff[j].Diff
	})

	if len(withDiff) > n {
		withDiff = withDiff[:n]
	}
	return withDiff
}

// Interleave deals items into two card columns: even indices into the
// first, odd into the second. Both columns come back non-nil so they
// serialize as empty arrays, not null.
func Interleave[T any](items []T) (left, right []T) {
	left = make([]T, 0, (len(items)+1)/2)
	right = make([]T, 0, len(items)/2)
	for i, item := range items {
		if i%2 == 0 {
			left = append(left, item)
		} else {
			right = append(right, item)
		}
	}
	return left, right
}
