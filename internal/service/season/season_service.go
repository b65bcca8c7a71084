package season

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/geo"
	"github.com/greenmarket/agridash/internal/pkg/logger"
	"github.com/greenmarket/agridash/internal/pkg/reshape"
	"github.com/greenmarket/agridash/internal/pkg/store"
)

type Service struct {
	store store.Store
	geo   *geo.Loader
}

func NewSeasonService(store store.Store, loader *geo.Loader) *Service {
	return &Service{store: store, geo: loader}
}

// Current returns the season label the mart currently carries.
func (s *Service) Current(ctx context.Context) (string, error) {
	names, err := s.store.SeasonNames(ctx)
	if err != nil {
		return "", fmt.Errorf("store.SeasonNames: %w", err)
	}
	if len(names) == 0 {
		return "", nil
	}

	return names[0], nil
}

// Items lists the selectable seasonal items.
func (s *Service) Items(ctx context.Context) ([]domain.SeasonItem, error) {
	items, err := s.store.SeasonItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.SeasonItems: %w", err)
	}

	return items, nil
}

// MapPayload is the choropleth response for one seasonal item.
type MapPayload struct {
	ItemKind string                `json:"item_kind"`
	Unit     string                `json:"unit,omitempty"`
	Map      *reshape.ChoroplethMap `json:"map"`
}

// GetMap joins the per-region prices of one seasonal item onto the
// boundary document. Regions without data stay on the map with neutral
// styling.
func (s *Service) GetMap(ctx context.Context, itemKind *string) (*MapPayload, error) {
	rows, err := s.store.SeasonRegionPrices(ctx, itemKind)
	if err != nil {
		return nil, fmt.Errorf("store.SeasonRegionPrices: %w", err)
	}

	fc, err := s.geo.Load()
	if err != nil {
		logger.Errorf(ctx, "geo.Load: %s", err.Error())
		return nil, fmt.Errorf("geo.Load: %w", err)
	}

	values := make([]reshape.RegionValue, 0, len(rows))
	for i := range rows {
		rank := rows[i].PriceRank
		values = append(values, reshape.RegionValue{
			Region: rows[i].CountryNm,
			Price:  rows[i].BasePr,
			YoYPct: rows[i].YoYPct,
			Rank:   &rank,
			Unit:   rows[i].Unit,
		})
	}

	payload := &MapPayload{Map: reshape.BuildChoropleth(fc, values)}
	if itemKind != nil {
		payload.ItemKind = *itemKind
	}
	if len(rows) > 0 {
		payload.Unit = rows[0].Unit
	}

	return payload, nil
}

// RegionComparison is the today vs. last-year chart for one region.
type RegionComparison struct {
	Region   string            `json:"region"`
	ItemKind string            `json:"item_kind"`
	Chart    []reshape.MeltRow `json:"chart"`
	YoYPct   *float64          `json:"yoy_pct,omitempty"`
}

// GetRegionComparison melts the selected item's current and prior-year
// prices for one region into chart rows and computes the year-over-year
// percent badge.
func (s *Service) GetRegionComparison(ctx context.Context, region string, itemKind *string) (*RegionComparison, error) {
	rows, err := s.store.SeasonRegionPrices(ctx, itemKind)
	if err != nil {
		return nil, fmt.Errorf("store.SeasonRegionPrices: %w", err)
	}

	region = strings.TrimSpace(region)
	regionRows := make([]domain.SeasonRegionPrice, 0, 1)
	for _, row := range rows {
		if strings.TrimSpace(row.CountryNm) == region {
			regionRows = append(regionRows, row)
		}
	}

	comparison := &RegionComparison{
		Region: region,
		Chart:  reshape.Melt(regionRows),
	}
	if itemKind != nil {
		comparison.ItemKind = *itemKind
	}
	if len(regionRows) > 0 {
		comparison.YoYPct = reshape.YoYPercent(regionRows[0].BasePr, regionRows[0].Prev1yPr)
	}

	return comparison, nil
}

// GetRegionAllItems returns every seasonal item's price in one region
// with its national rank. Ranks come from the full population, the
// region filter never shifts them.
func (s *Service) GetRegionAllItems(ctx context.Context, region string) ([]domain.RegionItemRank, error) {
	ranks, err := s.store.RegionAllItems(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("store.RegionAllItems: %w", err)
	}

	return ranks, nil
}

// SelectedItemMap is the choropleth payload for an item picked from the
// comparison cards. The per-region aggregate mart carries no unit column,
// so this payload has none.
type SelectedItemMap struct {
	ItemKind string                 `json:"item_kind"`
	Map      *reshape.ChoroplethMap `json:"map"`
}

// GetSelectedItemMap builds the region map for one item picked from the
// channel comparison cards, using the per-region aggregates.
func (s *Service) GetSelectedItemMap(ctx context.Context, itemNm, kindNm string, date *time.Time, category *string) (*SelectedItemMap, error) {
	stats, err := s.store.RegionStats(ctx, date, category)
	if err != nil {
		return nil, fmt.Errorf("store.RegionStats: %w", err)
	}

	fc, err := s.geo.Load()
	if err != nil {
		return nil, fmt.Errorf("geo.Load: %w", err)
	}

	values := make([]reshape.RegionValue, 0, len(stats))
	for _, stat := range stats {
		if stat.ItemNm != itemNm || (kindNm != "" && stat.KindNm != kindNm) {
			continue
		}
		values = append(values, reshape.RegionValue{
			Region: stat.CountryNm,
			Price:  stat.AvgPrice,
		})
	}

	return &SelectedItemMap{
		ItemKind: fmt.Sprintf("%s(%s)", itemNm, kindNm),
		Map:      reshape.BuildChoropleth(fc, values),
	}, nil
}
