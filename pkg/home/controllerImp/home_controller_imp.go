package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/home/controller"
	"vyaas/pkg/home/service"
	"vyaas/pkg/i18n"
	"vyaas/pkg/middleware"
)

type HomeCtrl struct {
	svc     service.HomeService
	strings *i18n.Bundle
}

func New(svc service.HomeService, bundle *i18n.Bundle) *HomeCtrl {
	return &HomeCtrl{svc: svc, strings: bundle}
}

var _ controller.HomeController = (*HomeCtrl)(nil)

func (h *HomeCtrl) Dashboard(c echo.Context) error {
	s := middleware.SessionFrom(c)
	d, err := h.svc.Dashboard(c.Request().Context(), s.Language(), s.Dismissed())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, d)
}

func (h *HomeCtrl) Dismiss(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || !h.svc.NotificationExists(id) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "notification not found"})
	}
	middleware.SessionFrom(c).Dismiss(id)
	return c.NoContent(http.StatusNoContent)
}

// Strings serves the resolved table for a language. Unknown languages get
// the English table.
func (h *HomeCtrl) Strings(c echo.Context) error {
	lang := c.Param("lang")
	resolved := lang
	if !h.strings.Has(lang) {
		resolved = i18n.Fallback
	}
	return c.JSON(http.StatusOK, map[string]any{
		"language":  resolved,
		"requested": lang,
		"strings":   h.strings.Table(lang),
	})
}
