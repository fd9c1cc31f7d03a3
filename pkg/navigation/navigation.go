package navigation

import (
	"errors"
	"fmt"
)

type Tab string

const (
	Home               Tab = "home"
	DataCollection     Tab = "data-collection"
	CropRecommendation Tab = "crop-recommendation"
	MarketInsights     Tab = "market-insights"
	SoilHealth         Tab = "soil-health"
	Profile            Tab = "profile"
)

// Tabs in bottom-bar order.
var Tabs = []Tab{Home, DataCollection, CropRecommendation, MarketInsights, SoilHealth, Profile}

type EventKind string

const (
	Select                  EventKind = "select"
	GenerateRecommendations EventKind = "generate_recommendations"
	CompareCrops            EventKind = "compare_crops"
)

type Event struct {
	Kind   EventKind `json:"event"`
	Target Tab       `json:"tab,omitempty"`
}

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownEvent = errors.New("unknown navigation event")
	ErrAuthRequired = errors.New("authentication required")
)

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Gated reports whether reaching t needs an authenticated session.
// Only the home tab is open to anonymous visitors.
func Gated(t Tab) bool { return t != Home }

// Transition computes the tab after ev. On error the caller keeps current.
func Transition(current Tab, ev Event, authenticated bool) (Tab, error) {
	var next Tab
	switch ev.Kind {
	case Select:
		t, err := ParseTab(string(ev.Target))
		if err != nil {
			return current, err
		}
		next = t
	case GenerateRecommendations:
		next = CropRecommendation
	case CompareCrops:
		next = MarketInsights
	default:
		return current, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}
	if Gated(next) && !authenticated {
		return current, ErrAuthRequired
	}
	return next, nil
}
