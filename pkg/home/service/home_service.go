package service

import (
	"context"

	"vyaas/entities"
)

type Insight struct {
	Title    string `json:"title"`
	Action   string `json:"action"`
	Image    string `json:"image"`
	Priority string `json:"priority"` // high|medium|low
}

type Notification struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// Gauge is one bar of the farm health overview. Placeholder is set when the
// value is a stand-in because the profile lacks the reading.
type Gauge struct {
	Label       string  `json:"label"`
	Display     string  `json:"display"`
	Percent     float64 `json:"percent"`
	Placeholder bool    `json:"placeholder"`
}

type Dashboard struct {
	HasProfile    bool                 `json:"has_profile"`
	FarmerName    string               `json:"farmer_name,omitempty"`
	Insights      []Insight            `json:"insights"`
	Health        []Gauge              `json:"health"`
	Notifications []Notification       `json:"notifications"`
	Today         *entities.WeatherDay `json:"today,omitempty"`
	Warning       string               `json:"warning,omitempty"`
}

type HomeService interface {
	// Dashboard builds the home tab in lang, leaving out notifications
	// whose id is in dismissed.
	Dashboard(ctx context.Context, lang string, dismissed map[int]bool) (Dashboard, error)
	// NotificationExists reports whether id names a notification.
	NotificationExists(id int) bool
}
