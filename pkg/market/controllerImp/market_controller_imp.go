package controllerImp

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/market/controller"
	"vyaas/pkg/market/service"
)

type MarketCtrl struct{ svc service.MarketService }

func New(svc service.MarketService) *MarketCtrl { return &MarketCtrl{svc: svc} }

var _ controller.MarketController = (*MarketCtrl)(nil)

func (h *MarketCtrl) Snapshot(c echo.Context) error {
	view, err := service.ParseView(c.QueryParam("view"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	name, err := url.PathUnescape(c.Param("crop"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad crop name"})
	}
	snap, err := h.svc.Snapshot(name, view)
	switch {
	case errors.Is(err, service.ErrEmptyCropName):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *MarketCtrl) Insights(c echo.Context) error {
	snaps, err := h.svc.Insights(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"crops": snaps})
}
