package serviceImp

import (
	"context"

	"vyaas/entities"
	"vyaas/pkg/weather/service"
)

var mockWeek = []entities.WeatherDay{
	{Day: "Mon", TempC: 28, Condition: "sunny", RainMM: 0, Humidity: 65},
	{Day: "Tue", TempC: 26, Condition: "cloudy", RainMM: 2, Humidity: 72},
	{Day: "Wed", TempC: 24, Condition: "rainy", RainMM: 15, Humidity: 85},
	{Day: "Thu", TempC: 25, Condition: "rainy", RainMM: 8, Humidity: 80},
	{Day: "Fri", TempC: 27, Condition: "cloudy", RainMM: 0, Humidity: 70},
	{Day: "Sat", TempC: 29, Condition: "sunny", RainMM: 0, Humidity: 62},
	{Day: "Sun", TempC: 30, Condition: "sunny", RainMM: 0, Humidity: 58},
}

// MockSource returns the same week for every location.
type MockSource struct{}

func NewMockSource() *MockSource { return &MockSource{} }

func (MockSource) Name() string { return "mock" }

func (MockSource) FetchForecast(ctx context.Context, location string) (entities.Forecast, error) {
	if err := ctx.Err(); err != nil {
		return entities.Forecast{}, err
	}
	if location == "" {
		location = service.DefaultLocation
	}
	return entities.Forecast{
		Location: location,
		Days:     append([]entities.WeatherDay(nil), mockWeek...),
		Source:   "mock",
	}, nil
}

var _ service.ForecastSource = (*MockSource)(nil)
