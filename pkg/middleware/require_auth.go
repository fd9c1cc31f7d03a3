package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthRequired is the body of every 401 from a gated action. The client
// reacts to action=authenticate by showing the sign-in page.
func AuthRequired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":  "authentication required",
		"action": "authenticate",
	})
}

// RequireAuth rejects requests whose session is not signed in.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFrom(c).Authenticated() {
				return AuthRequired(c)
			}
			return next(c)
		}
	}
}
