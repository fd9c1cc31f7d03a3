package controller

import "github.com/labstack/echo/v4"

type WeatherController interface {
	Forecast(c echo.Context) error
}
