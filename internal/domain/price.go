package domain

// PriceMover is one row of the day-over-day drop/rise top list. Rows are
// already ranked by the mart's ranking column; nothing re-sorts them.
type PriceMover struct {
	ItemNm       string   `db:"item_nm" json:"item_nm"`
	KindNm       string   `db:"kind_nm" json:"kind_nm"`
	Unit         string   `db:"product_cls_unit" json:"product_cls_unit"`
	BaseDt       string   `db:"base_dt" json:"base_dt"`
	BasePr       float64  `db:"base_pr" json:"base_pr"`
	Prev1dDt     string   `db:"prev_1d_dt" json:"prev_1d_dt"`
	Prev1dPr     float64  `db:"prev_1d_pr" json:"prev_1d_pr"`
	Prev1dDirPct *float64 `db:"prev_1d_dir_pct" json:"prev_1d_dir_pct"`
}

// RegionRate carries the pre-aggregated rise/drop/keep item counts for one
// region. The three counts sum to the region's tracked item count.
type RegionRate struct {
	CountryNm string `db:"country_nm" json:"country_nm"`
	RiseCount int64  `db:"rise_count" json:"rise_count"`
	DropCount int64  `db:"drop_count" json:"drop_count"`
	KeepCount int64  `db:"keep_count" json:"keep_count"`
}

// StatusShare is one slice of the rise/drop/keep donut.
type StatusShare struct {
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

// UpdateStatus is the dashboard header metadata.
type UpdateStatus struct {
	LatestDate   string `db:"latest_date" json:"latest_date"`
	RowCount     int64  `db:"row_count" json:"row_count"`
	CountryCount int64  `db:"country_count" json:"country_count"`
}
