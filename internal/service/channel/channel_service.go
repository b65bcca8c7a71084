package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/reshape"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewChannelService(store store.Store) *Service {
	return &Service{store: store}
}

// Summary is the header block above the comparison cards.
type Summary struct {
	RetailMean      float64 `json:"retail_mean"`
	TraditionalMean float64 `json:"traditional_mean"`
	DiffMean        float64 `json:"diff_mean"`
}

// Comparison is the full retail vs. traditional payload.
type Comparison struct {
	ViewDate string                      `json:"view_date"`
	Rows     []domain.ChannelComparison  `json:"rows"`
	Summary  *Summary                    `json:"summary,omitempty"`
	Cards    reshape.ChannelCardSections `json:"cards"`
}

// GetComparison runs the pivoted comparison for the latest date and
// derives the summary means and the card sections.
func (s *Service) GetComparison(ctx context.Context, category *string, limit *uint64) (*Comparison, error) {
	rows, err := s.store.ChannelComparison(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("store.ChannelComparison: %w", err)
	}

	comparison := &Comparison{
		Rows:  rows,
		Cards: reshape.SplitChannelCards(rows),
	}
	if len(rows) > 0 {
		comparison.ViewDate = rows[0].ViewDate
		comparison.Summary = summarize(rows)
	}

	return comparison, nil
}

// GetStats runs the long-form per-channel statistics and pivots them
// client-side into the same comparison shape.
func (s *Service) GetStats(ctx context.Context, date *time.Time, category *string) ([]domain.ChannelComparison, error) {
	stats, err := s.store.ChannelStats(ctx, date, category)
	if err != nil {
		return nil, fmt.Errorf("store.ChannelStats: %w", err)
	}

	return reshape.PivotChannels(stats), nil
}

func summarize(rows []domain.ChannelComparison) *Summary {
	var retail, traditional, diff decimal.Decimal
	for _, row := range rows {
		retail = retail.Add(decimal.NewFromFloat(row.RetailAvg))
		traditional = traditional.Add(decimal.NewFromFloat(row.TraditionalAvg))
		diff = diff.Add(decimal.NewFromFloat(row.PriceDiff))
	}

	n := decimal.NewFromInt(int64(len(rows)))
	return &Summary{
		RetailMean:      retail.Div(n).Round(2).InexactFloat64(),
		TraditionalMean: traditional.Div(n).Round(2).InexactFloat64(),
		DiffMean:        diff.Div(n).Round(2).InexactFloat64(),
	}
}
