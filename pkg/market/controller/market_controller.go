package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	Snapshot(c echo.Context) error
	Insights(c echo.Context) error
}
