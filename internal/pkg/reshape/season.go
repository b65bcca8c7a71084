package reshape

import (
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/shopspring/decimal"
)

// Labels of the today vs. last-year grouped bar chart.
const (
	LabelToday    = "오늘 가격"
	LabelLastYear = "1년 전 가격"
)

// MeltRow is one long-form observation for the grouped bar chart.
type MeltRow struct {
	ItemKind string  `json:"item_kind"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
}

// Melt converts the wide (current price, prior-year price) columns into
// long form, one row per (item, label) pair. Missing prior-year prices
// chart as zero.
func Melt(rows []domain.SeasonRegionPrice) []MeltRow {
	melted := make([]MeltRow, 0, 2*len(rows))
	for _, row := range rows {
		melted = append(melted, MeltRow{
			ItemKind: row.ItemKind,
			Label:    LabelToday,
			Value:    row.BasePr,
		})

		prev := 0.0
		if row.Prev1yPr != nil {
			prev = *row.Prev1yPr
		}
		melted = append(melted, MeltRow{
			ItemKind: row.ItemKind,
			Label:    LabelLastYear,
			Value:    prev,
		})
	}
	return melted
}

// YoYPercent computes the year-over-year percent change of base against
// prev, rounded to one decimal. A nil or zero prior price yields nil,
// never a division by zero.
func YoYPercent(base float64, prev *float64) *float64 {
	if prev == nil || *prev == 0 {
		return nil
	}

	pct := decimal.NewFromFloat(base).
		Sub(decimal.NewFromFloat(*prev)).
		Div(decimal.NewFromFloat(*prev)).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
	return &pct
}
