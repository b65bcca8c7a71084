package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPriceMoversQuery_NoRegion(t *testing.T) {
	sql, args, err := BuildPriceMoversQuery("gold", MoverDrop, nil)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM gold.mart_price_drop_top3")
	assert.Contains(t, sql, "WHERE 1=1")
	assert.Contains(t, sql, "ORDER BY ranking")
	assert.NotContains(t, sql, "LIMIT")
	assert.Empty(t, args)
}

func TestBuildPriceMoversQuery_RegionBecomesArg(t *testing.T) {
	region := "서울"
	sql, args, err := BuildPriceMoversQuery("gold", MoverRise, &region)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM gold.mart_price_rise_top3")
	assert.Contains(t, sql, "WHERE 1=1 AND country_nm = ?")
	assert.NotContains(t, sql, "서울")
	assert.Equal(t, []interface{}{"서울"}, args)
}

func TestBuildPriceMoversQuery_RegionOnlyExtendsWhere(t *testing.T) {
	region := "부산"
	plain, _, err := BuildPriceMoversQuery("gold", MoverDrop, nil)
	require.NoError(t, err)
	filtered, _, err := BuildPriceMoversQuery("gold", MoverDrop, &region)
	require.NoError(t, err)

	// the filtered template is the plain one with one more predicate,
	// select list and ordering stay untouched
	assert.Contains(t, filtered, "WHERE 1=1 AND country_nm = ?")
	assert.Equal(t,
		plain[:len("SELECT")],
		filtered[:len("SELECT")],
	)
	assert.Contains(t, plain, "ORDER BY ranking")
	assert.Contains(t, filtered, "ORDER BY ranking")
}

func TestBuildRegionRateQuery(t *testing.T) {
	region := "서울"
	sql, args, err := BuildRegionRateQuery("gold", &region)
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM gold.mart_price_region_count")
	assert.Contains(t, sql, "WHERE 1=1 AND country_nm = ?")
	assert.Equal(t, []interface{}{"서울"}, args)
}

func TestBuildRegionListQuery(t *testing.T) {
	sql, args, err := BuildRegionListQuery("gold")
	require.NoError(t, err)

	assert.Contains(t, sql, "SELECT DISTINCT country_nm")
	assert.Empty(t, args)
}

func TestBuildLatestPriceStatisticsQuery(t *testing.T) {
	sql, args, err := BuildLatestPriceStatisticsQuery("gold")
	require.NoError(t, err)

	assert.Contains(t, sql, "WITH latest_date AS (SELECT MAX(res_dt) as max_date FROM gold.api13_price_statistics_by_category)")
	assert.Contains(t, sql, "res_dt = latest_date.max_date")
	assert.Empty(t, args)
}
