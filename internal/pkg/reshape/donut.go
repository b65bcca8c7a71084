package reshape

import (
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/shopspring/decimal"
)

// Donut slice labels.
const (
	StatusRise = "상승"
	StatusDrop = "하락"
	StatusKeep = "유지"
)

// Proportions turns the rise/drop/keep counts into donut slices with
// percentages rounded to one decimal. The counts pass through untouched,
// so they still sum to the region's tracked item total.
func Proportions(rate *domain.RegionRate) []domain.StatusShare {
	if rate == nil {
		return nil
	}

	counts := []struct {
		status string
		count  int64
	}{
		{StatusRise, rate.RiseCount},
		{StatusDrop, rate.DropCount},
		{StatusKeep, rate.KeepCount},
	}

	total := rate.RiseCount + rate.DropCount + rate.KeepCount

	shares := make([]domain.StatusShare, 0, len(counts))
	for _, c := range counts {
		var pct float64
		if total > 0 {
			pct = decimal.NewFromInt(c.count).
				Div(decimal.NewFromInt(total)).
				Mul(decimal.NewFromInt(100)).
				Round(1).
				InexactFloat64()
		}
		shares = append(shares, domain.StatusShare{
			Status:  c.status,
			Count:   c.count,
			Percent: pct,
		})
	}
	return shares
}
