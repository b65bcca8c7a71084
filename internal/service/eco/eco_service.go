package eco

import (
	"context"
	"fmt"
	"sort"

	"github.com/greenmarket/agridash/internal/pkg/reshape"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/shopspring/decimal"
)

type Service struct {
	store store.Store
}

func NewEcoService(store store.Store) *Service {
	return &Service{store: store}
}

// MarketPrice is one market's price inside a card, cheapest first.
type MarketPrice struct {
	Market   string  `json:"market"`
	Price    float64 `json:"price"`
	Cheapest bool    `json:"cheapest"`
}

// MarketCard is one of the top-difference item cards.
type MarketCard struct {
	ItemNm    string        `json:"item_nm"`
	Prices    []MarketPrice `json:"prices"`
	PriceDiff float64       `json:"price_diff"`
}

// Summary is the header statistics of the eco page.
type Summary struct {
	RecordCount int64   `json:"record_count"`
	UniqueItems int     `json:"unique_items"`
	MeanPrice   float64 `json:"mean_price"`
}

// Latest is the whole eco page payload: the latest date, summary stats
// and the top-6 price-spread cards dealt into two columns.
type Latest struct {
	LatestDate string       `json:"latest_date"`
	Summary    Summary      `json:"summary"`
	CardsLeft  []MarketCard `json:"cards_left"`
	CardsRight []MarketCard `json:"cards_right"`
}

const topCards = 6

// GetLatest pivots the newest per-market statistics by market category,
// derives the per-item price spread and picks the six widest spreads.
// Even card indices land in the left column, odd in the right.
func (s *Service) GetLatest(ctx context.Context) (*Latest, error) {
	stats, err := s.store.LatestPriceStatistics(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.LatestPriceStatistics: %w", err)
	}

	latest := &Latest{
		CardsLeft:  []MarketCard{},
		CardsRight: []MarketCard{},
	}
	if len(stats) == 0 {
		return latest, nil
	}
	latest.LatestDate = stats[0].ResDt

	uniqueItems := make(map[string]bool)
	var priceSum decimal.Decimal
	cells := make([]reshape.Cell, 0, len(stats))
	for i := range stats {
		stat := &stats[i]
		uniqueItems[stat.ItemNm] = true
		priceSum = priceSum.Add(decimal.NewFromFloat(stat.AvgPrice))

		price := stat.AvgPrice
		cells = append(cells, reshape.Cell{
			Index:  []string{stat.ResDt, stat.ItemCd, stat.ItemNm},
			Column: stat.MarketCategory,
			Value:  &price,
		})
	}

	latest.Summary = Summary{
		RecordCount: int64(len(stats)),
		UniqueItems: len(uniqueItems),
		MeanPrice: priceSum.
			Div(decimal.NewFromInt(int64(len(stats)))).
			Round(2).
			InexactFloat64(),
	}

	pivot := reshape.Pivot([]string{"res_dt", "item_cd", "item_nm"}, cells)
	pivot.ComputeRangeDiff()

	cards := make([]MarketCard, 0, topCards)
	for _, row := range pivot.TopNByDiff(topCards) {
		cards = append(cards, buildCard(pivot, row))
	}

	latest.CardsLeft, latest.CardsRight = reshape.Interleave(cards)
	return latest, nil
}

func buildCard(pivot *reshape.PivotTable, row *reshape.PivotRow) MarketCard {
	card := MarketCard{
		ItemNm:    row.Keys[2],
		PriceDiff: *row.Diff,
	}

	for _, market := range pivot.ValueColumns {
		if v := row.Value(market); v != nil {
			card.Prices = append(card.Prices, MarketPrice{Market: market, Price: *v})
		}
	}

	sort.SliceStable(card.Prices, func(i, j int) bool {
		return card.Prices[i].Price < card.Prices[j].Price
	})
	if len(card.Prices) > 0 {
		card.Prices[0].Cheapest = true
	}

	return card
}
