package service

import (
	"context"
	"errors"

	"vyaas/entities"
)

// Format is an export rendering of the saved plans.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
	FormatXLSX     Format = "xlsx"
)

var (
	ErrNoCrops       = errors.New("at least one crop name is required")
	ErrUnknownFormat = errors.New("unknown export format")
	ErrNothingSaved  = errors.New("no saved plans")
)

// Export is a rendered download.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}

type PlanService interface {
	// Plan returns the fixed plan for cropName. Unregistered names get the
	// default plan with Fallback set.
	Plan(cropName string) entities.CultivationPlan
	// Personalize builds a plan per crop and replaces the saved-plan list.
	Personalize(ctx context.Context, cropNames []string) ([]entities.CultivationPlan, error)
	Saved(ctx context.Context) ([]entities.SavedPlan, error)
	// SavedCropNames lists crop names of the saved plans in order.
	SavedCropNames(ctx context.Context) ([]string, error)
	Export(ctx context.Context, f Format) (Export, error)
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatText, nil
	case FormatText, FormatMarkdown, FormatHTML, FormatXLSX:
		return f, nil
	}
	return "", ErrUnknownFormat
}
