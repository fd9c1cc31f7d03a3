package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/session"
)

const (
	CookieName = "VYAAS_SID"
	sessionKey = "session"
)

// Session attaches the caller's session, creating one (and its cookie) when
// the request carries no known id. The X-Session-Id header is accepted for
// clients without a cookie jar.
func Session(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get("X-Session-Id")
			if ck, err := c.Cookie(CookieName); err == nil && id == "" {
				id = ck.Value
			}
			s, ok := mgr.Get(id)
			if !ok {
				s = mgr.New()
				c.SetCookie(&http.Cookie{Name: CookieName, Value: s.ID, Path: "/", HttpOnly: true})
			}
			c.Response().Header().Set("X-Session-Id", s.ID)
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// SessionFrom returns the session set by Session. It panics when the
// middleware is missing from the chain.
func SessionFrom(c echo.Context) *session.Session {
	return c.Get(sessionKey).(*session.Session)
}
