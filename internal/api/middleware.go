package api

import (
	"github.com/google/uuid"
	"github.com/greenmarket/agridash/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-Id"

// RequestIDMiddleware tags every render cycle with an id so gateway
// failures can be tied back to the request that triggered them.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response().Header().Set(headerRequestID, id)

		err := next(ctx)
		if err != nil {
			logger.Errorf(ctx.Request().Context(), "request %s %s failed, request_id-%s: %s",
				ctx.Request().Method, ctx.Request().URL.Path, id, err.Error())
		}
		return err
	}
}
