package serviceImp

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/metrics"
	"vyaas/pkg/plan/registry"
	"vyaas/pkg/plan/repository"
	"vyaas/pkg/plan/service"
)

type PlanSvc struct {
	reg  *registry.Registry
	repo repository.PlanRepository
	log  *zap.Logger
}

func NewPlanService(reg *registry.Registry, repo repository.PlanRepository, log *zap.Logger) *PlanSvc {
	return &PlanSvc{reg: reg, repo: repo, log: log}
}

var _ service.PlanService = (*PlanSvc)(nil)

func (s *PlanSvc) Plan(cropName string) entities.CultivationPlan {
	steps, source, ok := s.reg.Lookup(cropName)
	p := entities.CultivationPlan{CropName: cropName, Steps: steps}
	if !ok {
		p.Fallback = true
		p.SourceCrop = source
		metrics.PlanLookupsTotal.WithLabelValues("fallback").Inc()
		s.log.Debug("plan fallback", zap.String("crop", cropName), zap.String("source", source))
	} else {
		metrics.PlanLookupsTotal.WithLabelValues("exact").Inc()
	}
	return p
}

func (s *PlanSvc) Personalize(ctx context.Context, cropNames []string) ([]entities.CultivationPlan, error) {
	var names []string
	for _, n := range cropNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, service.ErrNoCrops
	}

	plans := make([]entities.CultivationPlan, 0, len(names))
	saved := make([]entities.SavedPlan, 0, len(names))
	for _, n := range names {
		p := s.Plan(n)
		plans = append(plans, p)
		saved = append(saved, entities.SavedPlan{CropName: p.CropName, Steps: p.Steps})
	}
	if err := s.repo.ReplaceAll(ctx, saved); err != nil {
		return nil, fmt.Errorf("save plans: %w", err)
	}
	s.log.Info("personalized plans saved", zap.Strings("crops", names))
	return plans, nil
}

func (s *PlanSvc) Saved(ctx context.Context) ([]entities.SavedPlan, error) {
	return s.repo.List(ctx)
}

func (s *PlanSvc) SavedCropNames(ctx context.Context) ([]string, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.CropName)
	}
	return names, nil
}

func (s *PlanSvc) Export(ctx context.Context, f service.Format) (service.Export, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return service.Export{}, err
	}
	if len(ps) == 0 {
		return service.Export{}, service.ErrNothingSaved
	}
	return Render(ps, f)
}
