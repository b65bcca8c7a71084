package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/greenmarket/agridash/internal/pkg/constants"
)

const (
	retailAvgExpr      = "MAX(CASE WHEN channel_type = '유통' THEN avg_price END)"
	traditionalAvgExpr = "MAX(CASE WHEN channel_type = '전통' THEN avg_price END)"
)

// categoryFiltered reports whether the category value actually restricts
// anything. "전체" means the whole catalogue, same as no filter at all.
func categoryFiltered(category *string) bool {
	return category != nil && *category != "" && *category != constants.CategoryAll
}

// BuildChannelComparisonQuery builds the retail vs. traditional pivot for
// the most recent date in the mart:
//
//  1. latest_date finds MAX(res_dt),
//  2. aggregated_data averages prices per item/kind/channel on that date,
//     optionally restricted to one category,
//  3. the outer select pivots the channel into two columns, derives the
//     signed difference (retail - traditional), keeps only items priced
//     in both channels and orders by absolute difference.
func BuildChannelComparisonQuery(schema string, category *string, limit *uint64) (string, []interface{}, error) {
	table := schema + "." + tableChannelComparison

	inner := builder().
		Select(
			"item_nm",
			"kind_nm",
			"channel_type",
			"AVG(avg_price) as avg_price",
			"SUM(record_count) as total_records",
		).
		From(table + " CROSS JOIN latest_date").
		Where("res_dt = latest_date.max_date")

	if categoryFiltered(category) {
		inner = inner.Where(sq.Eq{"category_nm": *category})
	}

	inner = inner.
		GroupBy("item_nm", "kind_nm", "channel_type").
		Having("item_nm IS NOT NULL")

	innerSQL, innerArgs, err := inner.ToSql()
	if err != nil {
		return "", nil, err
	}

	outer := builder().
		Select(
			`(SELECT max_date FROM latest_date) as "조회일자"`,
			"item_nm",
			"kind_nm",
			fmt.Sprintf(`%s as "유통_평균가격"`, retailAvgExpr),
			fmt.Sprintf(`%s as "전통_평균가격"`, traditionalAvgExpr),
			fmt.Sprintf(`%s - %s as "가격차이"`, retailAvgExpr, traditionalAvgExpr),
			`MAX(CASE WHEN channel_type = '유통' THEN total_records END) as "유통_레코드수"`,
			`MAX(CASE WHEN channel_type = '전통' THEN total_records END) as "전통_레코드수"`,
		).
		From("aggregated_data CROSS JOIN latest_date").
		GroupBy("item_nm", "kind_nm").
		Having(fmt.Sprintf("%s IS NOT NULL AND %s IS NOT NULL", retailAvgExpr, traditionalAvgExpr)).
		OrderBy(fmt.Sprintf("ABS(%s - %s) DESC", retailAvgExpr, traditionalAvgExpr)).
		Prefix(fmt.Sprintf(
			"WITH latest_date AS (SELECT MAX(res_dt) as max_date FROM %s), aggregated_data AS (%s)",
			table, innerSQL,
		), innerArgs...)

	if limit != nil {
		outer = outer.Limit(*limit)
	}

	return outer.ToSql()
}

// BuildChannelStatsQuery builds the long-form per-channel statistics,
// optionally filtered by date and category. One row per
// item/kind/channel; the reshaper pivots these client-side.
func BuildChannelStatsQuery(schema string, date *time.Time, category *string) (string, []interface{}, error) {
	query := builder().
		Select(
			"item_nm",
			"kind_nm",
			"channel_type",
			`AVG(avg_price) as "평균가격"`,
			`MIN(min_price) as "최저가격"`,
			`MAX(max_price) as "최고가격"`,
			`SUM(record_count) as "총레코드수"`,
		).
		From(schema + "." + tableChannelComparison)

	if date != nil {
		query = query.Where("res_dt = ?", *date)
	}
	if categoryFiltered(category) {
		query = query.Where(sq.Eq{"category_nm": *category})
	}

	return query.
		GroupBy("item_nm", "kind_nm", "channel_type").
		OrderBy("item_nm", "kind_nm", "channel_type").
		ToSql()
}
