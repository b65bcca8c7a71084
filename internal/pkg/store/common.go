package store

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/greenmarket/agridash/internal/pkg/constants"
)

// mart tables produced by the warehouse batch layer
const (
	tablePriceDropTop3     = "mart_price_drop_top3"
	tablePriceRiseTop3     = "mart_price_rise_top3"
	tablePriceRegionCount  = "mart_price_region_count"
	tableChannelComparison = "mart_retail_channel_comparison"
	tableSeasonRegion      = "mart_season_region_product"
	tableUpdateStatus      = "mart_update_status"
	tablePriceStatistics   = "api13_price_statistics_by_category"
	tableRegionComparison  = "api17_region_comparison"
)

var mapping = map[error]error{
	context.DeadlineExceeded: constants.ErrQueryTimeout,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel SQL builder. Templates keep '?' placeholders;
// each gateway binds them its own way.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
