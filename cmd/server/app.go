package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vyaas/config"
	"vyaas/database"
	"vyaas/pkg/catalog"
	marketImp "vyaas/pkg/market/serviceImp"
	"vyaas/pkg/plan/registry"
	planRepoImp "vyaas/pkg/plan/repositoryImp"
	planImp "vyaas/pkg/plan/serviceImp"
	profileImp "vyaas/pkg/profile/serviceImp"
	"vyaas/pkg/random"
	recommendImp "vyaas/pkg/recommend/serviceImp"
	records "vyaas/pkg/storage/repository"
	storeImp "vyaas/pkg/storage/repositoryImp"
)

// app is the service graph shared by the server and the CLI commands.
type app struct {
	store     records.RecordRepository
	catalog   *catalog.Catalog
	profiles  *profileImp.ProfileSvc
	plans     *planImp.PlanSvc
	recommend *recommendImp.RecommendSvc
	market    *marketImp.MarketSvc
	close     func() error
}

func openStore(ctx context.Context, cfg config.AppConfig) (records.RecordRepository, func() error, error) {
	switch cfg.StoreBackend {
	case "sqlite", "":
		db, err := database.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return storeImp.NewGorm(db), sqlDB.Close, nil
	case "redis":
		dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rdb, err := storeImp.DialRedis(dialCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return storeImp.NewRedis(rdb), rdb.Close, nil
	case "memory":
		return storeImp.NewMemory(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}

func buildApp(ctx context.Context, cfg config.AppConfig, log *zap.Logger) (*app, error) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	reg, err := registry.Builtin()
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("load plans: %w", err)
	}

	rnd := random.New(cfg.RandomSeed)
	profiles := profileImp.NewProfileService(store, log.Named("profile"))
	plans := planImp.NewPlanService(reg, planRepoImp.New(store), log.Named("plan"))
	return &app{
		store:     store,
		catalog:   cat,
		profiles:  profiles,
		plans:     plans,
		recommend: recommendImp.NewRecommendService(cat, rnd, profiles, log.Named("recommend")),
		market:    marketImp.NewMarketService(rnd, plans, log.Named("market")),
		close:     closeStore,
	}, nil
}
