package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChannelComparisonQuery_AllCategoryEqualsNoFilter(t *testing.T) {
	all := "전체"
	empty := ""

	plainSQL, plainArgs, err := BuildChannelComparisonQuery("gold", nil, nil)
	require.NoError(t, err)

	for _, category := range []*string{&all, &empty} {
		sql, args, err := BuildChannelComparisonQuery("gold", category, nil)
		require.NoError(t, err)
		assert.Equal(t, plainSQL, sql)
		assert.Equal(t, plainArgs, args)
	}
}

func TestBuildChannelComparisonQuery_CategoryBecomesArg(t *testing.T) {
	category := "채소류"
	sql, args, err := BuildChannelComparisonQuery("gold", &category, nil)
	require.NoError(t, err)

	assert.Contains(t, sql, "category_nm = ?")
	assert.NotContains(t, sql, "채소류")
	assert.Equal(t, []interface{}{"채소류"}, args)
}

func TestBuildChannelComparisonQuery_Shape(t *testing.T) {
	sql, _, err := BuildChannelComparisonQuery("gold", nil, nil)
	require.NoError(t, err)

	// channel literals are pinned in the template, not bound
	assert.Contains(t, sql, "WITH latest_date AS (SELECT MAX(res_dt) as max_date FROM gold.mart_retail_channel_comparison)")
	assert.Contains(t, sql, "MAX(CASE WHEN channel_type = '유통' THEN avg_price END)")
	assert.Contains(t, sql, "MAX(CASE WHEN channel_type = '전통' THEN avg_price END)")

	// only items priced in both channels survive
	assert.Contains(t, sql, "HAVING MAX(CASE WHEN channel_type = '유통' THEN avg_price END) IS NOT NULL AND MAX(CASE WHEN channel_type = '전통' THEN avg_price END) IS NOT NULL")
	assert.Contains(t, sql, "ORDER BY ABS(")
	assert.NotContains(t, sql, "LIMIT")
}

func TestBuildChannelComparisonQuery_Limit(t *testing.T) {
	limit := uint64(10)
	sql, _, err := BuildChannelComparisonQuery("gold", nil, &limit)
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT 10")
}

func TestBuildChannelStatsQuery_Filters(t *testing.T) {
	date := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	category := "과일류"

	sql, args, err := BuildChannelStatsQuery("gold", &date, &category)
	require.NoError(t, err)

	assert.Contains(t, sql, "res_dt = ?")
	assert.Contains(t, sql, "category_nm = ?")
	assert.Contains(t, sql, "GROUP BY item_nm, kind_nm, channel_type")
	assert.Equal(t, []interface{}{date, "과일류"}, args)
}

func TestBuildChannelStatsQuery_AllCategoryNoop(t *testing.T) {
	all := "전체"

	plainSQL, plainArgs, err := BuildChannelStatsQuery("gold", nil, nil)
	require.NoError(t, err)
	allSQL, allArgs, err := BuildChannelStatsQuery("gold", nil, &all)
	require.NoError(t, err)

	assert.Equal(t, plainSQL, allSQL)
	assert.Equal(t, plainArgs, allArgs)
}
