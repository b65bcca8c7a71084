package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// MoverDirection selects which of the two ranked mover marts to read.
type MoverDirection string

const (
	MoverDrop MoverDirection = "drop"
	MoverRise MoverDirection = "rise"
)

func (d MoverDirection) table() string {
	if d == MoverRise {
		return tablePriceRiseTop3
	}
	return tablePriceDropTop3
}

// BuildRegionListQuery lists the regions available in the mover mart. The
// caller de-duplicates nothing (DISTINCT already does) but sorts the list
// lexicographically itself.
func BuildRegionListQuery(schema string) (string, []interface{}, error) {
	return builder().
		Select("DISTINCT country_nm").
		From(schema + "." + tablePriceDropTop3).
		ToSql()
}

// BuildPriceMoversQuery selects the day-over-day drop or rise list,
// optionally restricted to one region. Rows come back ordered by the
// mart's precomputed ranking; this layer adds no LIMIT. The "top 3" is a
// property of the mart, not of the query.
func BuildPriceMoversQuery(schema string, direction MoverDirection, region *string) (string, []interface{}, error) {
	query := builder().
		Select(
			"item_nm",
			"kind_nm",
			"product_cls_unit",
			"base_dt",
			"base_pr",
			"prev_1d_dt",
			"prev_1d_pr",
			"prev_1d_dir_pct",
		).
		From(schema + "." + direction.table()).
		Where("1=1").
		OrderBy("ranking")

	if region != nil {
		query = query.Where(sq.Eq{"country_nm": *region})
	}

	return query.ToSql()
}

// BuildRegionRateQuery selects the pre-aggregated rise/drop/keep counts,
// optionally for one region.
func BuildRegionRateQuery(schema string, region *string) (string, []interface{}, error) {
	query := builder().
		Select("country_nm", "rise_count", "drop_count", "keep_count").
		From(schema + "." + tablePriceRegionCount).
		Where("1=1")

	if region != nil {
		query = query.Where(sq.Eq{"country_nm": *region})
	}

	return query.ToSql()
}

// BuildUpdateStatusQuery reads the dashboard header metadata.
func BuildUpdateStatusQuery(schema string) (string, []interface{}, error) {
	return builder().
		Select("latest_date", "row_count", "country_count").
		From(schema + "." + tableUpdateStatus).
		ToSql()
}

// BuildLatestPriceStatisticsQuery selects the newest day's per-market
// price statistics in long form; the reshaper pivots market categories
// into columns.
func BuildLatestPriceStatisticsQuery(schema string) (string, []interface{}, error) {
	table := schema + "." + tablePriceStatistics

	query := builder().
		Select(
			"res_dt",
			"item_cd",
			"item_nm",
			"market_category",
			"record_count",
			"avg_price",
			"min_price",
			"max_price",
		).
		From(table + " CROSS JOIN latest_date").
		Where("res_dt = latest_date.max_date").
		OrderBy("item_nm", "market_category", "avg_price").
		Prefix(fmt.Sprintf("WITH latest_date AS (SELECT MAX(res_dt) as max_date FROM %s)", table))

	return query.ToSql()
}
