package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/soil/controller"
	"vyaas/pkg/soil/service"
)

type SoilCtrl struct{ svc service.SoilService }

func New(svc service.SoilService) *SoilCtrl { return &SoilCtrl{svc: svc} }

var _ controller.SoilController = (*SoilCtrl)(nil)

func (h *SoilCtrl) Report(c echo.Context) error {
	r, err := h.svc.Report(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, r)
}
