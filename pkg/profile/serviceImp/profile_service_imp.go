package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/metrics"
	"vyaas/pkg/profile/service"
	records "vyaas/pkg/storage/repository"
)

const storageWarning = "profile saved in memory only: storage unavailable"

// Simulated location fix.
var (
	detectedLocation = entities.GeoPoint{Lat: 20.2961, Lon: 85.8245}
	detectedAddress  = "Bhubaneswar, Khordha, Odisha"
)

type ProfileSvc struct {
	store records.RecordRepository
	log   *zap.Logger

	// mu serializes read-modify-write cycles on the single document.
	mu sync.Mutex
	// unsaved holds the last profile that could not reach storage.
	unsaved *entities.FarmProfile
}

func NewProfileService(store records.RecordRepository, log *zap.Logger) *ProfileSvc {
	return &ProfileSvc{store: store, log: log}
}

var _ service.ProfileService = (*ProfileSvc)(nil)

func (s *ProfileSvc) Save(ctx context.Context, p entities.FarmProfile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, p)
}

func (s *ProfileSvc) save(ctx context.Context, p entities.FarmProfile) (string, error) {
	if err := validateProfile(p); err != nil {
		return "", err
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Put(ctx, service.ProfileKey, b); err != nil {
		if abandoned(ctx, err) {
			return "", fmt.Errorf("save profile: %w", err)
		}
		s.log.Warn("profile storage unavailable, keeping in memory",
			zap.String("backend", s.store.Name()), zap.Error(err))
		metrics.StorageFallbacksTotal.WithLabelValues("save").Inc()
		cp := p
		s.unsaved = &cp
		return storageWarning, nil
	}
	s.unsaved = nil
	return "", nil
}

func (s *ProfileSvc) Load(ctx context.Context) (*entities.FarmProfile, error) {
	p, _, err := s.LoadWithWarning(ctx)
	return p, err
}

func (s *ProfileSvc) LoadWithWarning(ctx context.Context) (*entities.FarmProfile, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *ProfileSvc) load(ctx context.Context) (*entities.FarmProfile, string, error) {
	if s.unsaved != nil {
		cp := *s.unsaved
		return &cp, storageWarning, nil
	}
	b, err := s.store.Get(ctx, service.ProfileKey)
	if errors.Is(err, records.ErrNotFound) {
		return nil, "", nil
	}
	if err != nil {
		if abandoned(ctx, err) {
			return nil, "", fmt.Errorf("load profile: %w", err)
		}
		s.log.Warn("profile storage unavailable", zap.String("backend", s.store.Name()), zap.Error(err))
		metrics.StorageFallbacksTotal.WithLabelValues("load").Inc()
		return nil, "profile storage unavailable", nil
	}
	return s.decode(b), "", nil
}

// abandoned reports a storage error caused by the caller going away rather
// than by the backend.
func abandoned(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// decode never fails: a malformed document reads as no profile.
func (s *ProfileSvc) decode(b []byte) *entities.FarmProfile {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(b, &keys); err != nil {
		s.log.Warn("stored profile is malformed, ignoring", zap.Error(err))
		return nil
	}
	for _, legacy := range []string{"landSize", "landUnit"} {
		if _, ok := keys[legacy]; ok {
			s.log.Warn("stored profile uses a legacy field, ignoring it", zap.String("field", legacy))
		}
	}
	var p entities.FarmProfile
	if err := json.Unmarshal(b, &p); err != nil {
		s.log.Warn("stored profile is malformed, ignoring", zap.Error(err))
		return nil
	}
	return &p
}

// Patch applies fn to the stored profile, or to the blank form defaults when
// nothing is stored, and saves the result.
func (s *ProfileSvc) Patch(ctx context.Context, fn func(p *entities.FarmProfile)) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, _, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	p := entities.NewFarmProfile()
	if cur != nil {
		p = *cur
	}
	fn(&p)
	return s.save(ctx, p)
}

func (s *ProfileSvc) DetectLocation(ctx context.Context) error {
	_, err := s.Patch(ctx, func(p *entities.FarmProfile) {
		loc := detectedLocation
		p.Location = &loc
		p.Address = detectedAddress
	})
	return err
}

func (s *ProfileSvc) SyncExternal(ctx context.Context) error {
	_, err := s.Patch(ctx, func(p *entities.FarmProfile) {
		p.WeatherSync = true
		p.MarketSync = true
		p.SatelliteSync = true
	})
	return err
}
