package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetEcoLatest(ctx echo.Context) error {
	latest, err := c.ecoService.GetLatest(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, latest)
}
