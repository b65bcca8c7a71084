package domain

// PriceStat is one long-form row of the latest per-market price
// statistics (one row per item/market category).
type PriceStat struct {
	ResDt          string  `db:"res_dt" json:"res_dt"`
	ItemCd         string  `db:"item_cd" json:"item_cd"`
	ItemNm         string  `db:"item_nm" json:"item_nm"`
	MarketCategory string  `db:"market_category" json:"market_category"`
	RecordCount    int64   `db:"record_count" json:"record_count"`
	AvgPrice       float64 `db:"avg_price" json:"avg_price"`
	MinPrice       float64 `db:"min_price" json:"min_price"`
	MaxPrice       float64 `db:"max_price" json:"max_price"`
}

// ErrorResponse is the JSON body produced by the api error handler.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
