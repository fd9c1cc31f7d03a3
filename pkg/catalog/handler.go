package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the loaded catalog.
func Handler(c *Catalog) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, c)
	}
}
