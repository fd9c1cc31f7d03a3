package controller

import "github.com/labstack/echo/v4"

type HomeController interface {
	Dashboard(c echo.Context) error
	Dismiss(c echo.Context) error
	Strings(c echo.Context) error
}
