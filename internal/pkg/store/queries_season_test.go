package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeasonRegionPriceQuery_YoYNullSafety(t *testing.T) {
	sql, args, err := BuildSeasonRegionPriceQuery("gold", nil)
	require.NoError(t, err)

	// a missing or zero prior price yields NULL, never a division
	assert.Contains(t, sql, "WHEN prev_1y_pr IS NULL OR prev_1y_pr = 0 THEN NULL")
	assert.Contains(t, sql, "RANK() OVER (ORDER BY base_pr ASC) AS price_rank")
	assert.Empty(t, args)
}

func TestBuildSeasonRegionPriceQuery_ItemKindBecomesArg(t *testing.T) {
	itemKind := "배추(월동)"
	sql, args, err := BuildSeasonRegionPriceQuery("gold", &itemKind)
	require.NoError(t, err)

	assert.Contains(t, sql, "CONCAT(item_nm, '(', kind_nm, ')') = ?")
	assert.NotContains(t, sql, "배추")
	assert.Equal(t, []interface{}{"배추(월동)"}, args)
}

func TestBuildRegionAllItemsQuery_RankWindowUnfiltered(t *testing.T) {
	sql, args, err := BuildRegionAllItemsQuery("gold", "서울")
	require.NoError(t, err)

	// the window runs inside the CTE, the region predicate only outside,
	// so filtering can never shift a rank
	cteEnd := strings.Index(sql, "SELECT * FROM ranked")
	require.Greater(t, cteEnd, 0)
	cte := sql[:cteEnd]
	outer := sql[cteEnd:]

	assert.Contains(t, cte, "RANK() OVER (PARTITION BY CONCAT(item_nm, '(', kind_nm, ')') ORDER BY base_pr ASC) AS national_rank")
	assert.NotContains(t, cte, "country_nm = ?")
	assert.Contains(t, outer, "WHERE country_nm = ?")
	assert.Equal(t, []interface{}{"서울"}, args)
}

func TestBuildSeasonItemListQuery(t *testing.T) {
	sql, args, err := BuildSeasonItemListQuery("gold")
	require.NoError(t, err)

	assert.Contains(t, sql, "DISTINCT item_nm")
	assert.Contains(t, sql, "CONCAT(item_nm, '(', kind_nm, ')') AS item_kind")
	assert.Contains(t, sql, "ORDER BY item_nm, kind_nm")
	assert.Empty(t, args)
}

func TestBuildRegionStatsQuery_AllCategoryNoop(t *testing.T) {
	all := "전체"

	plainSQL, plainArgs, err := BuildRegionStatsQuery("gold", nil, nil)
	require.NoError(t, err)
	allSQL, allArgs, err := BuildRegionStatsQuery("gold", nil, &all)
	require.NoError(t, err)

	assert.Equal(t, plainSQL, allSQL)
	assert.Equal(t, plainArgs, allArgs)
}
