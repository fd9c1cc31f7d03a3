package service

import (
	"context"
	"errors"
	"strings"

	"vyaas/entities"
)

// ProfileKey is the storage key of the farm profile document.
const ProfileKey = "farmData"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalid       = errors.New("invalid profile")
)

// MissingFieldsError lists the form fields a form action needs.
type MissingFieldsError struct{ Fields []string }

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool { return target == ErrMissingFields }

// Action is a data-collection form button.
type Action string

const (
	ActionSave     Action = "save"
	ActionGenerate Action = "generate"
)

type ProfileService interface {
	// Save validates and stores p. warning is non-empty when storage failed
	// and the profile is held in memory only.
	Save(ctx context.Context, p entities.FarmProfile) (warning string, err error)
	// Load returns the stored profile, or nil when there is none.
	Load(ctx context.Context) (*entities.FarmProfile, error)
	LoadWithWarning(ctx context.Context) (*entities.FarmProfile, string, error)
	// Patch applies fn to the stored profile (or form defaults) and saves it.
	Patch(ctx context.Context, fn func(p *entities.FarmProfile)) (string, error)
	// DetectLocation writes the simulated GPS fix and address.
	DetectLocation(ctx context.Context) error
	// SyncExternal turns on every external data sync flag.
	SyncExternal(ctx context.Context) error
}

// RequiredFor checks the fields the given action needs before submitting.
func RequiredFor(a Action, p entities.FarmProfile) error {
	var missing []string
	if strings.TrimSpace(p.FarmerName) == "" {
		missing = append(missing, "farmerName")
	}
	if !p.FarmSize.Valid {
		missing = append(missing, "farmSize")
	}
	if a == ActionGenerate && strings.TrimSpace(p.CropType) == "" {
		missing = append(missing, "cropType")
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
