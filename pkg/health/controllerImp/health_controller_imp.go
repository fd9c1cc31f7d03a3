package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	records "vyaas/pkg/storage/repository"
)

var appStart = time.Now()

type HealthCtrl struct {
	store records.RecordRepository
}

func NewHealthCtrl(store records.RecordRepository) *HealthCtrl { return &HealthCtrl{store: store} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	storeOK := true
	storeErr := ""
	if h.store == nil {
		storeOK = false
		storeErr = "record store is nil"
	} else if err := h.store.Ping(ctx); err != nil {
		storeOK = false
		storeErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool   `json:"ok"`
		Backend string `json:"backend,omitempty"`
		Err     string `json:"err,omitempty"`
	}
	backend := ""
	if h.store != nil {
		backend = h.store.Name()
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": storeOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"storage": sub{OK: storeOK, Backend: backend, Err: storeErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}
	return c.JSON(status, resp)
}
