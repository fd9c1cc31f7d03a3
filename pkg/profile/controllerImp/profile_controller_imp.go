package controllerImp

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/middleware"
	"vyaas/pkg/navigation"
	"vyaas/pkg/profile/controller"
	"vyaas/pkg/profile/service"
	recommend "vyaas/pkg/recommend/service"
)

type ProfileCtrl struct {
	svc       service.ProfileService
	recommend recommend.RecommendService
	log       *zap.Logger
}

func New(svc service.ProfileService, rec recommend.RecommendService, log *zap.Logger) *ProfileCtrl {
	return &ProfileCtrl{svc: svc, recommend: rec, log: log}
}

var _ controller.ProfileController = (*ProfileCtrl)(nil)

func (h *ProfileCtrl) Get(c echo.Context) error {
	p, warning, err := h.svc.LoadWithWarning(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{"profile": p}
	if p == nil {
		resp["defaults"] = entities.NewFarmProfile()
	}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}

// bind decodes the form and checks the fields action a needs. When ok is
// false the error response has been written and err is its result.
func (h *ProfileCtrl) bind(c echo.Context, a service.Action) (p entities.FarmProfile, ok bool, err error) {
	p = entities.NewFarmProfile()
	if err := c.Bind(&p); err != nil {
		return p, false, c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := service.RequiredFor(a, p); err != nil {
		resp := map[string]any{"error": err.Error()}
		var mf *service.MissingFieldsError
		if errors.As(err, &mf) {
			resp["fields"] = mf.Fields
		}
		return p, false, c.JSON(http.StatusUnprocessableEntity, resp)
	}
	return p, true, nil
}

func (h *ProfileCtrl) save(c echo.Context, p entities.FarmProfile) (string, bool, error) {
	warning, err := h.svc.Save(c.Request().Context(), p)
	if errors.Is(err, service.ErrInvalid) {
		return "", false, c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	if err != nil {
		return "", false, c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return warning, true, nil
}

func (h *ProfileCtrl) Save(c echo.Context) error {
	p, ok, err := h.bind(c, service.ActionSave)
	if !ok {
		return err
	}
	warning, saved, err := h.save(c, p)
	if !saved {
		return err
	}
	resp := map[string]any{"profile": p}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}

// Generate saves the form, then produces recommendations and moves the
// session to the recommendation tab.
func (h *ProfileCtrl) Generate(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		return middleware.AuthRequired(c)
	}
	p, ok, err := h.bind(c, service.ActionGenerate)
	if !ok {
		return err
	}
	warning, saved, err := h.save(c, p)
	if !saved {
		return err
	}
	tab, err := sess.Navigate(navigation.Event{Kind: navigation.GenerateRecommendations})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	resp := map[string]any{
		"profile":         p,
		"recommendations": h.recommend.Generate(p),
		"next_tab":        tab,
	}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProfileCtrl) DetectLocation(c echo.Context) error {
	return h.schedule(c, "detect_location", h.svc.DetectLocation)
}

func (h *ProfileCtrl) Sync(c echo.Context) error {
	return h.schedule(c, "external_sync", h.svc.SyncExternal)
}

func (h *ProfileCtrl) schedule(c echo.Context, kind string, fn func(ctx context.Context) error) error {
	id, err := middleware.SessionFrom(c).Tasks().Schedule(kind, fn)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	h.log.Debug("task scheduled", zap.String("id", id), zap.String("kind", kind))
	return c.JSON(http.StatusAccepted, map[string]string{"task_id": id, "state": "pending"})
}

func (h *ProfileCtrl) TaskStatus(c echo.Context) error {
	info, ok := middleware.SessionFrom(c).Tasks().Status(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "task not found"})
	}
	return c.JSON(http.StatusOK, info)
}
