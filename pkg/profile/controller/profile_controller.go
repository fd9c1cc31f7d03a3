package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	Get(c echo.Context) error
	Save(c echo.Context) error
	Generate(c echo.Context) error
	DetectLocation(c echo.Context) error
	Sync(c echo.Context) error
	TaskStatus(c echo.Context) error
}
