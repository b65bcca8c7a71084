package controller

import (
	"net/http"

	"github.com/greenmarket/agridash/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetChannelComparison(ctx echo.Context) error {
	var req dto.ChannelComparisonRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	comparison, err := c.channelService.GetComparison(
		ctx.Request().Context(), req.CategoryFilter(), req.LimitFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comparison)
}

func (c *Controller) GetChannelStats(ctx echo.Context) error {
	var req dto.ChannelStatsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	rows, err := c.channelService.GetStats(
		ctx.Request().Context(), req.DateFilter(), req.CategoryFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}
