package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const itemKindExpr = "CONCAT(item_nm, '(', kind_nm, ')')"

// BuildSeasonNameQuery lists the distinct season labels present in the
// seasonal mart (normally a single row for the current season).
func BuildSeasonNameQuery(schema string) (string, []interface{}, error) {
	return builder().
		Select("DISTINCT season").
		From(schema + "." + tableSeasonRegion).
		ToSql()
}

// BuildSeasonItemListQuery lists the selectable seasonal items with the
// composite "item(kind)" key.
func BuildSeasonItemListQuery(schema string) (string, []interface{}, error) {
	return builder().
		Select(
			"DISTINCT item_nm",
			"kind_nm",
			itemKindExpr+" AS item_kind",
		).
		From(schema + "." + tableSeasonRegion).
		OrderBy("item_nm", "kind_nm").
		ToSql()
}

// BuildSeasonRegionPriceQuery selects every region's current price for a
// seasonal item together with the year-over-year percent change and a
// national rank.
//
// yoy_pct is NULL whenever the prior-year price is NULL or zero, never a
// division by zero. price_rank ranks the current price ascending over all
// regions, 1 = cheapest nationally.
func BuildSeasonRegionPriceQuery(schema string, itemKind *string) (string, []interface{}, error) {
	query := builder().
		Select(
			"product_no",
			"category_nm",
			"item_nm",
			"kind_nm",
			itemKindExpr+" AS item_kind",
			"product_cls_unit",
			"country_nm",
			"latitude",
			"longitude",
			"base_dt",
			"base_pr",
			"prev_1y_dt",
			"prev_1y_pr",
			"present_month",
			"season",
			"season_month",
			`CASE
        WHEN prev_1y_pr IS NULL OR prev_1y_pr = 0 THEN NULL
        ELSE ( (base_pr - prev_1y_pr) / prev_1y_pr ) * 100
    END AS yoy_pct`,
			"RANK() OVER (ORDER BY base_pr ASC) AS price_rank",
		).
		From(schema + "." + tableSeasonRegion)

	if itemKind != nil {
		query = query.Where(sq.Eq{itemKindExpr: *itemKind})
	}

	return query.ToSql()
}

// BuildRegionAllItemsQuery selects every seasonal item's price in one
// region together with a national rank per item. The rank window runs
// over the full unfiltered population inside the CTE; the region filter
// only applies to the outer select, so filtering never shifts ranks.
func BuildRegionAllItemsQuery(schema string, region string) (string, []interface{}, error) {
	inner := builder().
		Select(
			"item_nm",
			"kind_nm",
			itemKindExpr+" AS item_kind",
			"product_cls_unit",
			"country_nm",
			"base_pr",
			"prev_1y_pr",
			fmt.Sprintf("RANK() OVER (PARTITION BY %s ORDER BY base_pr ASC) AS national_rank", itemKindExpr),
		).
		From(schema + "." + tableSeasonRegion)

	innerSQL, _, err := inner.ToSql()
	if err != nil {
		return "", nil, err
	}

	return builder().
		Select("*").
		From("ranked").
		Where(sq.Eq{"country_nm": region}).
		Prefix(fmt.Sprintf("WITH ranked AS (%s)", innerSQL)).
		ToSql()
}

// BuildRegionStatsQuery aggregates per-region price statistics for the
// selected-item region map, optionally filtered by date and category.
func BuildRegionStatsQuery(schema string, date *time.Time, category *string) (string, []interface{}, error) {
	query := builder().
		Select(
			"country_nm",
			"item_nm",
			"kind_nm",
			`AVG(avg_price) as "평균가격"`,
			`MIN(min_price) as "최저가격"`,
			`MAX(max_price) as "최고가격"`,
			`SUM(record_count) as "총레코드수"`,
		).
		From(schema + "." + tableRegionComparison)

	if date != nil {
		query = query.Where("res_dt = ?", *date)
	}
	if categoryFiltered(category) {
		query = query.Where(sq.Eq{"category_nm": *category})
	}

	return query.
		GroupBy("country_nm", "item_nm", "kind_nm").
		OrderBy("country_nm", "item_nm", "kind_nm").
		ToSql()
}
