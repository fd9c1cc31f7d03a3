package controller

import "github.com/labstack/echo/v4"

type SoilController interface {
	Report(c echo.Context) error
}
