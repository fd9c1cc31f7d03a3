package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vyaas/pkg/weather/controller"
	"vyaas/pkg/weather/service"
)

type WeatherCtrl struct{ src service.ForecastSource }

func New(src service.ForecastSource) *WeatherCtrl { return &WeatherCtrl{src: src} }

var _ controller.WeatherController = (*WeatherCtrl)(nil)

func (h *WeatherCtrl) Forecast(c echo.Context) error {
	f, err := h.src.FetchForecast(c.Request().Context(), c.QueryParam("location"))
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}
