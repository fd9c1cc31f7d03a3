package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Get(c echo.Context) error
	Personalize(c echo.Context) error
	Saved(c echo.Context) error
	Export(c echo.Context) error
}
