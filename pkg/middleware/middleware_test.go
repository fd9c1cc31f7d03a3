package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vyaas/pkg/session"
)

func newEcho(mgr *session.Manager) *echo.Echo {
	e := echo.New()
	e.Use(Session(mgr))
	e.GET("/open", func(c echo.Context) error { return c.String(http.StatusOK, SessionFrom(c).ID) })
	e.GET("/gated", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAuth())
	return e
}

func TestSessionCookieIssuedAndReused(t *testing.T) {
	mgr := session.NewManager(time.Second, session.DefaultIdleTTL, zap.NewNop())
	defer mgr.Shutdown()
	e := newEcho(mgr)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	id := rec.Body.String()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())

	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("X-Session-Id", id)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Body.String())
	assert.Equal(t, 1, mgr.Len())
}

func TestRequireAuth(t *testing.T) {
	mgr := session.NewManager(time.Second, session.DefaultIdleTTL, zap.NewNop())
	defer mgr.Shutdown()
	e := newEcho(mgr)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gated", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"authentication required","action":"authenticate"}`, rec.Body.String())

	s := mgr.New()
	s.EnterDemo()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("X-Session-Id", s.ID)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCookielessSessionsAreReclaimed(t *testing.T) {
	mgr := session.NewManager(time.Second, 20*time.Millisecond, zap.NewNop())
	defer mgr.Shutdown()
	e := newEcho(mgr)

	for i := 0; i < 200; i++ {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/open", nil))
	}
	assert.LessOrEqual(t, mgr.Len(), 200)

	time.Sleep(50 * time.Millisecond)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/open", nil))
	assert.Equal(t, 1, mgr.Len())
}
