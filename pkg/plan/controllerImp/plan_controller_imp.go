package controllerImp

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/plan/controller"
	"vyaas/pkg/plan/service"
)

type PlanCtrl struct{ svc service.PlanService }

func New(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

var _ controller.PlanController = (*PlanCtrl)(nil)

func (h *PlanCtrl) Get(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("crop"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad crop name"})
	}
	return c.JSON(http.StatusOK, h.svc.Plan(name))
}

func (h *PlanCtrl) Personalize(c echo.Context) error {
	var body struct {
		Crops []string `json:"crops"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	plans, err := h.svc.Personalize(c.Request().Context(), body.Crops)
	if errors.Is(err, service.ErrNoCrops) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"plans": plans})
}

func (h *PlanCtrl) Saved(c echo.Context) error {
	ps, err := h.svc.Saved(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if ps == nil {
		return c.JSON(http.StatusOK, map[string]any{"plans": []any{}})
	}
	return c.JSON(http.StatusOK, map[string]any{"plans": ps})
}

func (h *PlanCtrl) Export(c echo.Context) error {
	f, err := service.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.Export(c.Request().Context(), f)
	switch {
	case errors.Is(err, service.ErrNothingSaved):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	return c.Blob(http.StatusOK, out.ContentType, out.Body)
}
