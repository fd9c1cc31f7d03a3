package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vyaas/pkg/catalog"
	"vyaas/router"

	authCtrlImp "vyaas/pkg/auth/controllerImp"
	healthCtrlImp "vyaas/pkg/health/controllerImp"
	homeCtrlImp "vyaas/pkg/home/controllerImp"
	homeImp "vyaas/pkg/home/serviceImp"
	"vyaas/pkg/i18n"
	marketCtrlImp "vyaas/pkg/market/controllerImp"
	planCtrlImp "vyaas/pkg/plan/controllerImp"
	profileCtrlImp "vyaas/pkg/profile/controllerImp"
	recommendCtrlImp "vyaas/pkg/recommend/controllerImp"
	"vyaas/pkg/session"
	soilCtrlImp "vyaas/pkg/soil/controllerImp"
	soilImp "vyaas/pkg/soil/serviceImp"
	weatherCtrlImp "vyaas/pkg/weather/controllerImp"
	weatherImp "vyaas/pkg/weather/serviceImp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", cfg.Fields()...)

	a, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	bundle, err := i18n.Load()
	if err != nil {
		return err
	}
	forecast := weatherImp.NewRateLimitedSource(
		weatherImp.NewCachedSource(weatherImp.NewMockSource(), cfg.WeatherCacheTTL, logger.Named("weather")),
		cfg.WeatherRPS, 1,
	)
	sessions := session.NewManager(cfg.SimulatedDelay, cfg.SessionIdleTTL, logger.Named("session"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	router.New(e, sessions, logger.Named("http"), router.Controllers{
		Auth:      authCtrlImp.NewAuthController(logger.Named("auth")),
		Profile:   profileCtrlImp.New(a.profiles, a.recommend, logger.Named("profile")),
		Recommend: recommendCtrlImp.New(a.recommend),
		Market:    marketCtrlImp.New(a.market),
		Plan:      planCtrlImp.New(a.plans),
		Soil:      soilCtrlImp.New(soilImp.NewSoilService(a.profiles)),
		Weather:   weatherCtrlImp.New(forecast),
		Home:      homeCtrlImp.New(homeImp.NewHomeService(a.profiles, forecast, bundle, logger.Named("home")), bundle),
		Health:    healthCtrlImp.NewHealthCtrl(a.store),
		Catalog:   catalog.Handler(a.catalog),
	})

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("store", a.store.Name()))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		sessions.Shutdown()
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	sessions.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
