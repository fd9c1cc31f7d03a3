package serviceImp

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/home/service"
	"vyaas/pkg/i18n"
	weather "vyaas/pkg/weather/service"
)

var insights = []service.Insight{
	{Title: "Optimal Sowing Window", Action: "Plant Mustard now for best yield", Image: "/tulsi-holy-basil-planting-season.jpg", Priority: "high"},
	{Title: "Market Price Rising", Action: "Soybean demand up 12% this week", Image: "/market_price_soybean_home.png", Priority: "medium"},
	{Title: "Pest Alert", Action: "Aphids detected in nearby regions, monitor your crops", Image: "/placeholder.svg", Priority: "low"},
}

// A notice is literal text or an i18n key.
type notice struct {
	id      int
	key     string
	message string
	time    string
}

var notices = []notice{
	{id: 1, key: "home.insights.soilHealth", time: "2 hours ago"},
	{id: 2, message: "Mustard fits your soil this season", time: "1 day ago"},
	{id: 3, key: "home.insights.marketTrend", time: "2 days ago"},
	{id: 4, key: "home.insights.weatherAlert", time: "3 days ago"},
	{id: 5, message: "Harvest reminder: Soybean is approaching maturity", time: "1 week ago"},
}

type profileLoader interface {
	LoadWithWarning(ctx context.Context) (*entities.FarmProfile, string, error)
}

type HomeSvc struct {
	profiles profileLoader
	forecast weather.ForecastSource
	strings  *i18n.Bundle
	log      *zap.Logger
}

func NewHomeService(profiles profileLoader, forecast weather.ForecastSource, bundle *i18n.Bundle, log *zap.Logger) *HomeSvc {
	return &HomeSvc{profiles: profiles, forecast: forecast, strings: bundle, log: log}
}

var _ service.HomeService = (*HomeSvc)(nil)

func (s *HomeSvc) Dashboard(ctx context.Context, lang string, dismissed map[int]bool) (service.Dashboard, error) {
	p, warning, err := s.profiles.LoadWithWarning(ctx)
	if err != nil {
		return service.Dashboard{}, err
	}
	d := service.Dashboard{
		HasProfile: p != nil,
		Insights:   append([]service.Insight(nil), insights...),
		Health:     health(p),
		Warning:    warning,
	}
	location := ""
	if p != nil {
		d.FarmerName = p.FarmerName
		location = p.Address
	}

	d.Notifications = []service.Notification{}
	for _, n := range notices {
		if dismissed[n.id] {
			continue
		}
		msg := n.message
		if n.key != "" {
			msg = s.strings.T(lang, n.key)
		}
		d.Notifications = append(d.Notifications, service.Notification{ID: n.id, Message: msg, Time: n.time})
	}

	// The widget is optional; a forecast failure does not fail the dashboard.
	f, err := s.forecast.FetchForecast(ctx, location)
	if err != nil {
		s.log.Warn("forecast unavailable for dashboard", zap.Error(err))
	} else if len(f.Days) > 0 {
		today := f.Days[0]
		d.Today = &today
	}
	return d, nil
}

func (s *HomeSvc) NotificationExists(id int) bool {
	for _, n := range notices {
		if n.id == id {
			return true
		}
	}
	return false
}

func health(p *entities.FarmProfile) []service.Gauge {
	soil := service.Gauge{Label: "Soil Health", Display: "85%", Percent: 85, Placeholder: true}
	size := service.Gauge{Label: "Farm Size", Display: "72%", Percent: 72, Placeholder: true}
	water := service.Gauge{Label: "Water Level", Display: "60%", Percent: 60, Placeholder: true}
	if p == nil {
		return []service.Gauge{soil, size, water}
	}
	if p.SoilPH.Valid {
		soil = service.Gauge{Label: soil.Label, Display: "pH " + p.SoilPH.String(), Percent: p.SoilPH.Value / 14 * 100}
	}
	if p.FarmSize.Valid {
		size = service.Gauge{Label: size.Label, Display: fmt.Sprintf("%s %s", p.FarmSize.String(), p.FarmUnit), Percent: size.Percent}
	}
	if p.SoilMoisture.Valid {
		water = service.Gauge{Label: water.Label, Display: strconv.FormatFloat(p.SoilMoisture.Value, 'f', -1, 64) + "%", Percent: p.SoilMoisture.Value}
	}
	return []service.Gauge{soil, size, water}
}
