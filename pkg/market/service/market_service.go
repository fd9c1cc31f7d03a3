package service

import (
	"context"
	"errors"

	"vyaas/entities"
)

// View selects the percent-change span used for regional prices.
type View string

const (
	ViewModal     View = "modal"     // single-crop dialog, percent change in [-5,15)
	ViewAggregate View = "aggregate" // market tab, percent change in [-5,20)
)

var (
	ErrEmptyCropName = errors.New("crop name is required")
	ErrUnknownView   = errors.New("unknown market view")
)

// DefaultCrops are shown by the market tab when no plans are saved.
var DefaultCrops = []string{"Mustard", "Soybean", "Sunflower"}

type MarketService interface {
	Snapshot(cropName string, view View) (entities.MarketSnapshot, error)
	Snapshots(cropNames []string, view View) ([]entities.MarketSnapshot, error)
	// Insights builds aggregate snapshots for the first three saved-plan crops,
	// or for DefaultCrops when nothing usable is saved.
	Insights(ctx context.Context) ([]entities.MarketSnapshot, error)
}

func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewAggregate:
		return ViewAggregate, nil
	case ViewModal:
		return ViewModal, nil
	}
	return "", ErrUnknownView
}
