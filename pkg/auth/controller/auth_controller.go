package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	Login(c echo.Context) error
	Signup(c echo.Context) error
	Verify(c echo.Context) error
	Demo(c echo.Context) error
	SignOut(c echo.Context) error
	CompleteOnboarding(c echo.Context) error
	WhoAmI(c echo.Context) error
	SetLanguage(c echo.Context) error
	Navigate(c echo.Context) error
	CurrentTab(c echo.Context) error
}
