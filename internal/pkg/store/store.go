package store

import (
	"context"
	"fmt"
	"time"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/gateway"
)

// Store is the read-only data surface of the dashboard. Every method
// builds one parameterized query, runs it through the gateway and decodes
// the rows. An empty result is never an error.
type Store interface {
	ListRegions(ctx context.Context) ([]string, error)
	PriceMovers(ctx context.Context, direction MoverDirection, region *string) ([]domain.PriceMover, error)
	RegionRate(ctx context.Context, region *string) (*domain.RegionRate, error)
	ChannelComparison(ctx context.Context, category *string, limit *uint64) ([]domain.ChannelComparison, error)
	ChannelStats(ctx context.Context, date *time.Time, category *string) ([]domain.ChannelStat, error)
	SeasonNames(ctx context.Context) ([]string, error)
	SeasonItems(ctx context.Context) ([]domain.SeasonItem, error)
	SeasonRegionPrices(ctx context.Context, itemKind *string) ([]domain.SeasonRegionPrice, error)
	RegionAllItems(ctx context.Context, region string) ([]domain.RegionItemRank, error)
	RegionStats(ctx context.Context, date *time.Time, category *string) ([]domain.RegionStat, error)
	UpdateStatus(ctx context.Context) (*domain.UpdateStatus, error)
	LatestPriceStatistics(ctx context.Context) ([]domain.PriceStat, error)
}

type store struct {
	gw gateway.Gateway
}

func NewStore(gw gateway.Gateway) Store {
	return &store{gw: gw}
}

func (s *store) schema() string {
	return s.gw.Config().Schema
}

func (s *store) run(ctx context.Context, sql string, args []interface{}, err error) (*domain.ResultTable, error) {
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	table, err := s.gw.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}

	return table, nil
}

func (s *store) ListRegions(ctx context.Context) ([]string, error) {
	sql, args, err := BuildRegionListQuery(s.schema())
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	regions := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		regions = append(regions, row.String("country_nm"))
	}
	return regions, nil
}

func (s *store) PriceMovers(ctx context.Context, direction MoverDirection, region *string) ([]domain.PriceMover, error) {
	sql, args, err := BuildPriceMoversQuery(s.schema(), direction, region)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	movers := make([]domain.PriceMover, 0, len(table.Rows))
	for _, row := range table.Rows {
		movers = append(movers, domain.PriceMover{
			ItemNm:       row.String("item_nm"),
			KindNm:       row.String("kind_nm"),
			Unit:         row.String("product_cls_unit"),
			BaseDt:       row.String("base_dt"),
			BasePr:       row.Float("base_pr"),
			Prev1dDt:     row.String("prev_1d_dt"),
			Prev1dPr:     row.Float("prev_1d_pr"),
			Prev1dDirPct: row.NullFloat("prev_1d_dir_pct"),
		})
	}
	return movers, nil
}

func (s *store) RegionRate(ctx context.Context, region *string) (*domain.RegionRate, error) {
	sql, args, err := BuildRegionRateQuery(s.schema(), region)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, nil
	}

	row := table.Rows[0]
	return &domain.RegionRate{
		CountryNm: row.String("country_nm"),
		RiseCount: row.Int("rise_count"),
		DropCount: row.Int("drop_count"),
		KeepCount: row.Int("keep_count"),
	}, nil
}

func (s *store) ChannelComparison(ctx context.Context, category *string, limit *uint64) ([]domain.ChannelComparison, error) {
	sql, args, err := BuildChannelComparisonQuery(s.schema(), category, limit)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ChannelComparison, 0, len(table.Rows))
	for _, row := range table.Rows {
		rows = append(rows, domain.ChannelComparison{
			ViewDate:         row.String("조회일자"),
			ItemNm:           row.String("item_nm"),
			KindNm:           row.String("kind_nm"),
			RetailAvg:        row.Float("유통_평균가격"),
			TraditionalAvg:   row.Float("전통_평균가격"),
			PriceDiff:        row.Float("가격차이"),
			RetailRecords:    row.Int("유통_레코드수"),
			TraditionalRecs:  row.Int("전통_레코드수"),
		})
	}
	return rows, nil
}

func (s *store) ChannelStats(ctx context.Context, date *time.Time, category *string) ([]domain.ChannelStat, error) {
	sql, args, err := BuildChannelStatsQuery(s.schema(), date, category)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.ChannelStat, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats = append(stats, domain.ChannelStat{
			ItemNm:      row.String("item_nm"),
			KindNm:      row.String("kind_nm"),
			ChannelType: row.String("channel_type"),
			AvgPrice:    row.Float("평균가격"),
			MinPrice:    row.Float("최저가격"),
			MaxPrice:    row.Float("최고가격"),
			Records:     row.Int("총레코드수"),
		})
	}
	return stats, nil
}

func (s *store) SeasonNames(ctx context.Context) ([]string, error) {
	sql, args, err := BuildSeasonNameQuery(s.schema())
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		names = append(names, row.String("season"))
	}
	return names, nil
}

func (s *store) SeasonItems(ctx context.Context) ([]domain.SeasonItem, error) {
	sql, args, err := BuildSeasonItemListQuery(s.schema())
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	items := make([]domain.SeasonItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		items = append(items, domain.SeasonItem{
			ItemNm:   row.String("item_nm"),
			KindNm:   row.String("kind_nm"),
			ItemKind: row.String("item_kind"),
		})
	}
	return items, nil
}

func (s *store) SeasonRegionPrices(ctx context.Context, itemKind *string) ([]domain.SeasonRegionPrice, error) {
	sql, args, err := BuildSeasonRegionPriceQuery(s.schema(), itemKind)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	prices := make([]domain.SeasonRegionPrice, 0, len(table.Rows))
	for _, row := range table.Rows {
		prices = append(prices, domain.SeasonRegionPrice{
			ProductNo:    row.String("product_no"),
			CategoryNm:   row.String("category_nm"),
			ItemNm:       row.String("item_nm"),
			KindNm:       row.String("kind_nm"),
			ItemKind:     row.String("item_kind"),
			Unit:         row.String("product_cls_unit"),
			CountryNm:    row.String("country_nm"),
			Latitude:     row.Float("latitude"),
			Longitude:    row.Float("longitude"),
			BaseDt:       row.String("base_dt"),
			BasePr:       row.Float("base_pr"),
			Prev1yDt:     row.String("prev_1y_dt"),
			Prev1yPr:     row.NullFloat("prev_1y_pr"),
			PresentMonth: row.Int("present_month"),
			Season:       row.String("season"),
			SeasonMonth:  row.String("season_month"),
			YoYPct:       row.NullFloat("yoy_pct"),
			PriceRank:    row.Int("price_rank"),
		})
	}
	return prices, nil
}

func (s *store) RegionAllItems(ctx context.Context, region string) ([]domain.RegionItemRank, error) {
	sql, args, err := BuildRegionAllItemsQuery(s.schema(), region)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	ranks := make([]domain.RegionItemRank, 0, len(table.Rows))
	for _, row := range table.Rows {
		ranks = append(ranks, domain.RegionItemRank{
			ItemNm:       row.String("item_nm"),
			KindNm:       row.String("kind_nm"),
			ItemKind:     row.String("item_kind"),
			Unit:         row.String("product_cls_unit"),
			CountryNm:    row.String("country_nm"),
			BasePr:       row.Float("base_pr"),
			Prev1yPr:     row.NullFloat("prev_1y_pr"),
			NationalRank: row.Int("national_rank"),
		})
	}
	return ranks, nil
}

func (s *store) RegionStats(ctx context.Context, date *time.Time, category *string) ([]domain.RegionStat, error) {
	sql, args, err := BuildRegionStatsQuery(s.schema(), date, category)
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.RegionStat, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats = append(stats, domain.RegionStat{
			CountryNm: row.String("country_nm"),
			ItemNm:    row.String("item_nm"),
			KindNm:    row.String("kind_nm"),
			AvgPrice:  row.Float("평균가격"),
			MinPrice:  row.Float("최저가격"),
			MaxPrice:  row.Float("최고가격"),
			Records:   row.Int("총레코드수"),
		})
	}
	return stats, nil
}

func (s *store) UpdateStatus(ctx context.Context) (*domain.UpdateStatus, error) {
	sql, args, err := BuildUpdateStatusQuery(s.schema())
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, nil
	}

	row := table.Rows[0]
	return &domain.UpdateStatus{
		LatestDate:   row.String("latest_date"),
		RowCount:     row.Int("row_count"),
		CountryCount: row.Int("country_count"),
	}, nil
}

func (s *store) LatestPriceStatistics(ctx context.Context) ([]domain.PriceStat, error) {
	sql, args, err := BuildLatestPriceStatisticsQuery(s.schema())
	table, err := s.run(ctx, sql, args, err)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.PriceStat, 0, len(table.Rows))
	for _, row := range table.Rows {
		stats = append(stats, domain.PriceStat{
			ResDt:          row.String("res_dt"),
			ItemCd:         row.String("item_cd"),
			ItemNm:         row.String("item_nm"),
			MarketCategory: row.String("market_category"),
			RecordCount:    row.Int("record_count"),
			AvgPrice:       row.Float("avg_price"),
			MinPrice:       row.Float("min_price"),
			MaxPrice:       row.Float("max_price"),
		})
	}
	return stats, nil
}
