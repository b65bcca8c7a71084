package eco

import (
	"context"
	"testing"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	store.Store
	stats []domain.PriceStat
}

func (s *stubStore) LatestPriceStatistics(context.Context) ([]domain.PriceStat, error) {
	return s.stats, nil
}

func TestGetLatest_Empty(t *testing.T) {
	svc := NewEcoService(&stubStore{})

	latest, err := svc.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Empty(t, latest.LatestDate)

	// card columns stay arrays in the JSON payload even with no data
	require.NotNil(t, latest.CardsLeft)
	require.NotNil(t, latest.CardsRight)
	assert.Empty(t, latest.CardsLeft)
	assert.Empty(t, latest.CardsRight)
}

func TestGetLatest_BuildsSpreadCards(t *testing.T) {
	day := "2026-08-20"
	stats := []domain.PriceStat{
		{ResDt: day, ItemCd: "0101", ItemNm: "쌀", MarketCategory: "대형마트", AvgPrice: 2800},
		{ResDt: day, ItemCd: "0101", ItemNm: "쌀", MarketCategory: "전통시장", AvgPrice: 2500},
		{ResDt: day, ItemCd: "0202", ItemNm: "배추", MarketCategory: "대형마트", AvgPrice: 4200},
		{ResDt: day, ItemCd: "0202", ItemNm: "배추", MarketCategory: "전통시장", AvgPrice: 3600},
		// single-market item has no spread, it never becomes a card
		{ResDt: day, ItemCd: "0303", ItemNm: "감자", MarketCategory: "대형마트", AvgPrice: 2900},
	}

	svc := NewEcoService(&stubStore{stats: stats})
	latest, err := svc.GetLatest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, day, latest.LatestDate)
	assert.Equal(t, int64(5), latest.Summary.RecordCount)
	assert.Equal(t, 3, latest.Summary.UniqueItems)
	assert.Equal(t, 3200.0, latest.Summary.MeanPrice)

	// widest spread first: 배추 (600) before 쌀 (300), dealt into columns
	require.Len(t, latest.CardsLeft, 1)
	require.Len(t, latest.CardsRight, 1)

	cabbage := latest.CardsLeft[0]
	assert.Equal(t, "배추", cabbage.ItemNm)
	assert.Equal(t, 600.0, cabbage.PriceDiff)
	require.Len(t, cabbage.Prices, 2)
	assert.Equal(t, "전통시장", cabbage.Prices[0].Market)
	assert.True(t, cabbage.Prices[0].Cheapest)
	assert.False(t, cabbage.Prices[1].Cheapest)

	assert.Equal(t, "쌀", latest.CardsRight[0].ItemNm)
}
