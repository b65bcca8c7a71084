package controller

import (
	"net/http"
	"slices"

	"github.com/greenmarket/agridash/internal/domain/dto"
	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/greenmarket/agridash/internal/pkg/store"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetRegions(ctx echo.Context) error {
	regions, err := c.priceService.ListRegions(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Regions []string `json:"regions"`
		Default string   `json:"default,omitempty"`
	}

	resp := response{Regions: regions}
	if slices.Contains(regions, constants.DefaultRegion) {
		resp.Default = constants.DefaultRegion
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) GetPriceDrops(ctx echo.Context) error {
	return c.getMovers(ctx, store.MoverDrop)
}

func (c *Controller) GetPriceRises(ctx echo.Context) error {
	return c.getMovers(ctx, store.MoverRise)
}

func (c *Controller) getMovers(ctx echo.Context, direction store.MoverDirection) error {
	var req dto.MoversRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	movers, err := c.priceService.Movers(ctx.Request().Context(), direction, req.RegionFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, movers)
}

func (c *Controller) GetPriceRate(ctx echo.Context) error {
	var req dto.MoversRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	shares, err := c.priceService.Donut(ctx.Request().Context(), req.RegionFilter())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, shares)
}

func (c *Controller) GetPriceOverview(ctx echo.Context) error {
	var req dto.OverviewRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	overview, err := c.priceService.GetOverview(ctx.Request().Context(), req.Region)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, overview)
}
