package api

import (
	"fmt"

	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// Binder wraps echo's default binder so malformed query parameters come
// back as coded bad-request errors instead of opaque 500s.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return fmt.Errorf("%w: %s", constants.ErrBadRequest, err)
	}
	return nil
}
