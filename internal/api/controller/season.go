package controller

import (
	"net/http"

	"github.com/greenmarket/agridash/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetCurrentSeason(ctx echo.Context) error {
	season, err := c.seasonService.Current(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Season string `json:"season"`
	}

	return ctx.JSON(http.StatusOK, response{Season: season})
}

func (c *Controller) GetSeasonItems(ctx echo.Context) error {
	items, err := c.seasonService.Items(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, items)
}

func (c *Controller) GetSeasonMap(ctx echo.Context) error {
	var req dto.SeasonMapRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	payload, err := c.seasonService.GetMap(ctx.Request().Context(), req.ItemKindFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, payload)
}

func (c *Controller) GetRegionComparison(ctx echo.Context) error {
	var req dto.RegionComparisonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	comparison, err := c.seasonService.GetRegionComparison(
		ctx.Request().Context(), ctx.Param("region"), &req.ItemKind)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comparison)
}

func (c *Controller) GetRegionAllItems(ctx echo.Context) error {
	ranks, err := c.seasonService.GetRegionAllItems(ctx.Request().Context(), ctx.Param("region"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ranks)
}

func (c *Controller) GetSelectedItemMap(ctx echo.Context) error {
	var req dto.SelectedItemMapRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	payload, err := c.seasonService.GetSelectedItemMap(
		ctx.Request().Context(), req.ItemNm, req.KindNm, req.DateFilter(), req.CategoryFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, payload)
}
