package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	ForStoredProfile(c echo.Context) error
}
