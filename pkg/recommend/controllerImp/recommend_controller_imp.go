package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/recommend/controller"
	"vyaas/pkg/recommend/service"
)

type RecommendCtrl struct{ svc service.RecommendService }

func New(svc service.RecommendService) *RecommendCtrl { return &RecommendCtrl{svc: svc} }

var _ controller.RecommendController = (*RecommendCtrl)(nil)

// ForStoredProfile regenerates from the saved profile; with no profile the
// selection falls through to the shuffled path.
func (h *RecommendCtrl) ForStoredProfile(c echo.Context) error {
	p, recs, err := h.svc.ForStoredProfile(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"has_profile":     p != nil,
		"recommendations": recs,
	})
}
