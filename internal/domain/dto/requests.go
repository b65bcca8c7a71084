package dto

import "time"

// Query-parameter shapes bound by the api layer. Empty strings mean "no
// filter"; the helpers below turn them into the optional values the
// store expects.

type MoversRequest struct {
	Region string `query:"region"`
}

func (r *MoversRequest) RegionFilter() *string {
	return optional(r.Region)
}

type OverviewRequest struct {
	Region string `query:"region" validate:"required"`
}

type ChannelComparisonRequest struct {
	Category string `query:"category" validate:"omitempty,pricecategory"`
	Limit    uint64 `query:"limit" validate:"omitempty,gte=1,lte=500"`
}

func (r *ChannelComparisonRequest) CategoryFilter() *string {
	return optional(r.Category)
}

func (r *ChannelComparisonRequest) LimitFilter() *uint64 {
	if r.Limit == 0 {
		return nil
	}
	return &r.Limit
}

type ChannelStatsRequest struct {
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Category string `query:"category" validate:"omitempty,pricecategory"`
}

func (r *ChannelStatsRequest) DateFilter() *time.Time {
	return optionalDate(r.Date)
}

func (r *ChannelStatsRequest) CategoryFilter() *string {
	return optional(r.Category)
}

type SeasonMapRequest struct {
	ItemKind string `query:"item_kind"`
}

func (r *SeasonMapRequest) ItemKindFilter() *string {
	return optional(r.ItemKind)
}

type RegionComparisonRequest struct {
	ItemKind string `query:"item_kind" validate:"required"`
}

type SelectedItemMapRequest struct {
	ItemNm   string `query:"item_nm" validate:"required"`
	KindNm   string `query:"kind_nm"`
	Date     string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Category string `query:"category" validate:"omitempty,pricecategory"`
}

func (r *SelectedItemMapRequest) DateFilter() *time.Time {
	return optionalDate(r.Date)
}

func (r *SelectedItemMapRequest) CategoryFilter() *string {
	return optional(r.Category)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
