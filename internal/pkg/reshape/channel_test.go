package reshape

import (
	"testing"

	"github.com/greenmarket/agridash/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotChannels_CabbageBothChannels(t *testing.T) {
	stats := []domain.ChannelStat{
		{ItemNm: "배추", KindNm: "월동", ChannelType: domain.ChannelRetail, AvgPrice: 4200, Records: 18},
		{ItemNm: "배추", KindNm: "월동", ChannelType: domain.ChannelTraditional, AvgPrice: 3600, Records: 25},
		// potato is priced in one channel only and must not survive
		{ItemNm: "감자", KindNm: "수미", ChannelType: domain.ChannelRetail, AvgPrice: 2900, Records: 11},
	}

	rows := PivotChannels(stats)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "배추", row.ItemNm)
	assert.Equal(t, "월동", row.KindNm)
	assert.Equal(t, 4200.0, row.RetailAvg)
	assert.Equal(t, 3600.0, row.TraditionalAvg)
	assert.Equal(t, 600.0, row.PriceDiff)
	assert.Equal(t, int64(18), row.RetailRecords)
	assert.Equal(t, int64(25), row.TraditionalRecs)
}

func TestPivotChannels_PreservesInputOrder(t *testing.T) {
	stats := []domain.ChannelStat{
		{ItemNm: "사과", KindNm: "후지", ChannelType: domain.ChannelRetail, AvgPrice: 8000},
		{ItemNm: "배추", KindNm: "월동", ChannelType: domain.ChannelRetail, AvgPrice: 4200},
		{ItemNm: "배추", KindNm: "월동", ChannelType: domain.ChannelTraditional, AvgPrice: 3600},
		{ItemNm: "사과", KindNm: "후지", ChannelType: domain.ChannelTraditional, AvgPrice: 7500},
	}

	rows := PivotChannels(stats)

	require.Len(t, rows, 2)
	assert.Equal(t, "사과", rows[0].ItemNm)
	assert.Equal(t, "배추", rows[1].ItemNm)
}

func TestSplitChannelCards(t *testing.T) {
	rows := []domain.ChannelComparison{
		{ItemNm: "a", RetailAvg: 900, TraditionalAvg: 2000, PriceDiff: -1100},
		{ItemNm: "b", RetailAvg: 2000, TraditionalAvg: 1000, PriceDiff: 1000},
		{ItemNm: "c", RetailAvg: 1100, TraditionalAvg: 2000, PriceDiff: -900},
		{ItemNm: "d", RetailAvg: 1200, TraditionalAvg: 2000, PriceDiff: -800},
		{ItemNm: "e", RetailAvg: 1300, TraditionalAvg: 2000, PriceDiff: -700},
		{ItemNm: "f", RetailAvg: 1500, TraditionalAvg: 1500, PriceDiff: 0},
	}

	sections := SplitChannelCards(rows)

	// three per side at most, zero-diff rows land nowhere
	require.Len(t, sections.RetailCheaper, 3)
	require.Len(t, sections.TraditionalCheaper, 1)

	first := sections.RetailCheaper[0]
	assert.Equal(t, "a", first.ItemNm)
	assert.Equal(t, "대형마트", first.CheaperChannel)
	assert.Equal(t, 900.0, first.CheaperPrice)
	assert.Equal(t, 1100.0, first.PriceDiff)

	trad := sections.TraditionalCheaper[0]
	assert.Equal(t, "b", trad.ItemNm)
	assert.Equal(t, "전통시장", trad.CheaperChannel)
	assert.Equal(t, 1000.0, trad.CheaperPrice)

	// input order (absolute difference descending) is preserved
	assert.Equal(t, "c", sections.RetailCheaper[1].ItemNm)
	assert.Equal(t, "d", sections.RetailCheaper[2].ItemNm)
}
