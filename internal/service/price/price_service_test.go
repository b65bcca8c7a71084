package price

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
	regions []string
	movers  map[store.MoverDirection][]domain.PriceMover
	rate    *domain.RegionRate
}

func (s *stubStore) ListRegions(context.Context) ([]string, error) {
	return s.regions, nil
}

func (s *stubStore) PriceMovers(_ context.Context, direction store.MoverDirection, _ *string) ([]domain.PriceMover, error) {
	return s.movers[direction], nil
}

func (s *stubStore) RegionRate(context.Context, *string) (*domain.RegionRate, error) {
	return s.rate, nil
}

func TestListRegions_Sorted(t *testing.T) {
	svc := NewPriceService(&stubStore{regions: []string{"서울", "부산", "대구"}})

	regions, err := svc.ListRegions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"대구", "부산", "서울"}, regions)
}

func TestMovers_KeepsMartOrder(t *testing.T) {
	svc := NewPriceService(&stubStore{movers: map[store.MoverDirection][]domain.PriceMover{
		store.MoverDrop: {
			{ItemNm: "배추"},
			{ItemNm: "무"},
			{ItemNm: "감자"},
		},
	}})

	movers, err := svc.Movers(context.Background(), store.MoverDrop, nil)
	require.NoError(t, err)
	require.Len(t, movers, 3)
	assert.Equal(t, "배추", movers[0].ItemNm)
	assert.Equal(t, "감자", movers[2].ItemNm)
}

func TestGetOverview(t *testing.T) {
	svc := NewPriceService(&stubStore{
		movers: map[store.MoverDirection][]domain.PriceMover{
			store.MoverDrop: {{ItemNm: "배추"}},
			store.MoverRise: {{ItemNm: "사과"}},
		},
		rate: &domain.RegionRate{CountryNm: "서울", RiseCount: 2, DropCount: 3, KeepCount: 5},
	})

	overview, err := svc.GetOverview(context.Background(), "서울")
	require.NoError(t, err)

	assert.Equal(t, "서울", overview.Region)
	require.Len(t, overview.Drop, 1)
	require.Len(t, overview.Rise, 1)
	require.Len(t, overview.Shares, 3)

	var total int64
	for _, s := range overview.Shares {
		total += s.Count
	}
	assert.Equal(t, int64(10), total)
}

func TestDonut_EmptyRegion(t *testing.T) {
	svc := NewPriceService(&stubStore{})

	shares, err := svc.Donut(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, shares)
}
