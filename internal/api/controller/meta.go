package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetUpdateStatus(ctx echo.Context) error {
	status, err := c.metaService.Status(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, status)
}
