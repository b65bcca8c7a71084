package price

import (
	"context"
	"fmt"
	"sort"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/reshape"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	store store.Store
}

func NewPriceService(store store.Store) *Service {
	return &Service{store: store}
}

// ListRegions returns the distinct regions sorted lexicographically.
func (s *Service) ListRegions(ctx context.Context) ([]string, error) {
	regions, err := s.store.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListRegions: %w", err)
	}

	sort.Strings(regions)
	return regions, nil
}

// Movers returns the day-over-day drop or rise cards in the order the
// ranking column dictates. Nothing is re-sorted here.
func (s *Service) Movers(ctx context.Context, direction store.MoverDirection, region *string) ([]domain.PriceMover, error) {
	movers, err := s.store.PriceMovers(ctx, direction, region)
	if err != nil {
		return nil, fmt.Errorf("store.PriceMovers: %w", err)
	}

	return movers, nil
}

// Donut returns the rise/drop/keep donut slices for one region. An empty
// result yields an empty slice, not an error.
func (s *Service) Donut(ctx context.Context, region *string) ([]domain.StatusShare, error) {
	rate, err := s.store.RegionRate(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("store.RegionRate: %w", err)
	}

	return reshape.Proportions(rate), nil
}

// Overview is the combined payload for the price section of the
// dashboard: drop top list, rise top list and the donut for one region.
type Overview struct {
	Region string               `json:"region"`
	Drop   []domain.PriceMover  `json:"drop"`
	Rise   []domain.PriceMover  `json:"rise"`
	Shares []domain.StatusShare `json:"shares"`
}

// GetOverview fans the three region queries out concurrently and joins
// the results into one response.
func (s *Service) GetOverview(ctx context.Context, region string) (*Overview, error) {
	overview := &Overview{Region: region}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		overview.Drop, err = s.Movers(egCtx, store.MoverDrop, &region)
		return err
	})
	eg.Go(func() error {
		var err error
		overview.Rise, err = s.Movers(egCtx, store.MoverRise, &region)
		return err
	})
	eg.Go(func() error {
		var err error
		overview.Shares, err = s.Donut(egCtx, &region)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("err in goroutine: %w", err)
	}

	return overview, nil
}
