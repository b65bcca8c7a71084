package domain

// SeasonItem is one selectable seasonal item. ItemKind is the composite
// "item(kind)" key used as both filter value and display label.
type SeasonItem struct {
	ItemNm   string `db:"item_nm" json:"item_nm"`
	KindNm   string `db:"kind_nm" json:"kind_nm"`
	ItemKind string `db:"item_kind" json:"item_kind"`
}

// SeasonRegionPrice is one region's price point for a seasonal item.
// YoYPct is computed in SQL and is nil whenever the prior-year price is
// null or zero. PriceRank is a national rank over all regions, 1 =
// cheapest.
type SeasonRegionPrice struct {
	ProductNo    string   `db:"product_no" json:"product_no"`
	CategoryNm   string   `db:"category_nm" json:"category_nm"`
	ItemNm       string   `db:"item_nm" json:"item_nm"`
	KindNm       string   `db:"kind_nm" json:"kind_nm"`
	ItemKind     string   `db:"item_kind" json:"item_kind"`
	Unit         string   `db:"product_cls_unit" json:"product_cls_unit"`
	CountryNm    string   `db:"country_nm" json:"country_nm"`
	Latitude     float64  `db:"latitude" json:"latitude"`
	Longitude    float64  `db:"longitude" json:"longitude"`
	BaseDt       string   `db:"base_dt" json:"base_dt"`
	BasePr       float64  `db:"base_pr" json:"base_pr"`
	Prev1yDt     string   `db:"prev_1y_dt" json:"prev_1y_dt"`
	Prev1yPr     *float64 `db:"prev_1y_pr" json:"prev_1y_pr"`
	PresentMonth int64    `db:"present_month" json:"present_month"`
	Season       string   `db:"season" json:"season"`
	SeasonMonth  string   `db:"season_month" json:"season_month"`
	YoYPct       *float64 `db:"yoy_pct" json:"yoy_pct"`
	PriceRank    int64    `db:"price_rank" json:"price_rank"`
}

// RegionItemRank is one seasonal item's price in a single region together
// with its national rank. The rank is computed over the full population
// before the region filter, so it never shifts with the filter.
type RegionItemRank struct {
	ItemNm       string   `db:"item_nm" json:"item_nm"`
	KindNm       string   `db:"kind_nm" json:"kind_nm"`
	ItemKind     string   `db:"item_kind" json:"item_kind"`
	Unit         string   `db:"product_cls_unit" json:"product_cls_unit"`
	CountryNm    string   `db:"country_nm" json:"country_nm"`
	BasePr       float64  `db:"base_pr" json:"base_pr"`
	Prev1yPr     *float64 `db:"prev_1y_pr" json:"prev_1y_pr"`
	NationalRank int64    `db:"national_rank" json:"national_rank"`
}

// RegionStat is a per-region aggregate for one item/kind, used by the
// selected-item region map.
type RegionStat struct {
	CountryNm string  `db:"country_nm" json:"country_nm"`
	ItemNm    string  `db:"item_nm" json:"item_nm"`
	KindNm    string  `db:"kind_nm" json:"kind_nm"`
	AvgPrice  float64 `db:"평균가격" json:"avg_price"`
	MinPrice  float64 `db:"최저가격" json:"min_price"`
	MaxPrice  float64 `db:"최고가격" json:"max_price"`
	Records   int64   `db:"총레코드수" json:"records"`
}
