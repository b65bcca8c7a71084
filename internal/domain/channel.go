package domain

// ChannelComparison is one pivoted row of the retail vs. traditional
// comparison: both channel averages present, ordered by absolute price
// difference descending. PriceDiff is retail minus traditional.
type ChannelComparison struct {
	ViewDate         string  `db:"조회일자" json:"view_date"`
	ItemNm           string  `db:"item_nm" json:"item_nm"`
	KindNm           string  `db:"kind_nm" json:"kind_nm"`
	RetailAvg        float64 `db:"유통_평균가격" json:"retail_avg_price"`
	TraditionalAvg   float64 `db:"전통_평균가격" json:"traditional_avg_price"`
	PriceDiff        float64 `db:"가격차이" json:"price_diff"`
	RetailRecords    int64   `db:"유통_레코드수" json:"retail_records"`
	TraditionalRecs  int64   `db:"전통_레코드수" json:"traditional_records"`
}

// ChannelStat is the long-form per-channel row (one row per
// item/kind/channel) used by the client-side pivot path.
type ChannelStat struct {
	ItemNm      string  `db:"item_nm" json:"item_nm"`
	KindNm      string  `db:"kind_nm" json:"kind_nm"`
	ChannelType string  `db:"channel_type" json:"channel_type"`
	AvgPrice    float64 `db:"평균가격" json:"avg_price"`
	MinPrice    float64 `db:"최저가격" json:"min_price"`
	MaxPrice    float64 `db:"최고가격" json:"max_price"`
	Records     int64   `db:"총레코드수" json:"records"`
}

// Channel type values as stored in the mart.
const (
	ChannelRetail      = "유통"
	ChannelTraditional = "전통"
)
