package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	authCtrl "vyaas/pkg/auth/controller"
	homeCtrl "vyaas/pkg/home/controller"
	marketCtrl "vyaas/pkg/market/controller"
	"vyaas/pkg/middleware"
	planCtrl "vyaas/pkg/plan/controller"
	profileCtrl "vyaas/pkg/profile/controller"
	recommendCtrl "vyaas/pkg/recommend/controller"
	"vyaas/pkg/session"
	soilCtrl "vyaas/pkg/soil/controller"
	weatherCtrl "vyaas/pkg/weather/controller"
)

type Controllers struct {
	Auth      authCtrl.AuthController
	Profile   profileCtrl.ProfileController
	Recommend recommendCtrl.RecommendController
	Market    marketCtrl.MarketController
	Plan      planCtrl.PlanController
	Soil      soilCtrl.SoilController
	Weather   weatherCtrl.WeatherController
	Home      homeCtrl.HomeController
	Health    interface{ Health(echo.Context) error }
	Catalog   echo.HandlerFunc
}

func New(e *echo.Echo, sessions *session.Manager, log *zap.Logger, h Controllers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(log))

	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("", middleware.Session(sessions))
	gated := middleware.RequireAuth()

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/signup", h.Auth.Signup)
	api.POST("/auth/verify", h.Auth.Verify)
	api.POST("/auth/demo", h.Auth.Demo)
	api.POST("/auth/signout", h.Auth.SignOut)
	api.POST("/auth/onboarding/complete", h.Auth.CompleteOnboarding)
	api.GET("/whoami", h.Auth.WhoAmI)
	api.PUT("/session/language", h.Auth.SetLanguage)

	api.GET("/nav", h.Auth.CurrentTab)
	api.POST("/nav", h.Auth.Navigate)

	api.GET("/profile", h.Profile.Get)
	api.PUT("/profile", h.Profile.Save)
	// auth is checked inside so the form is validated only for signed-in users
	api.POST("/profile/generate", h.Profile.Generate)
	api.POST("/profile/location/detect", h.Profile.DetectLocation)
	api.POST("/profile/sync", h.Profile.Sync)
	api.GET("/tasks/:id", h.Profile.TaskStatus)

	api.GET("/catalog", h.Catalog)
	api.GET("/recommendations", h.Recommend.ForStoredProfile, gated)

	api.GET("/market", h.Market.Insights, gated)
	api.GET("/market/:crop", h.Market.Snapshot, gated)

	api.GET("/plans/saved", h.Plan.Saved)
	api.GET("/plans/export", h.Plan.Export)
	api.POST("/plans/personalized", h.Plan.Personalize, gated)
	api.GET("/plans/:crop", h.Plan.Get)

	api.GET("/soil", h.Soil.Report, gated)

	api.GET("/weather", h.Weather.Forecast)
	api.GET("/home", h.Home.Dashboard)
	api.POST("/home/notifications/:id/dismiss", h.Home.Dismiss)
	api.GET("/i18n/:lang", h.Home.Strings)
	return e
}
