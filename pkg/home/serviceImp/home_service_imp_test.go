package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vyaas/entities"
	"vyaas/pkg/i18n"
	weatherImp "vyaas/pkg/weather/serviceImp"
)

type stubProfiles struct {
	p       *entities.FarmProfile
	warning string
	err     error
}

func (s stubProfiles) LoadWithWarning(context.Context) (*entities.FarmProfile, string, error) {
	return s.p, s.warning, s.err
}

type downForecast struct{}

func (downForecast) Name() string { return "down" }
func (downForecast) FetchForecast(context.Context, string) (entities.Forecast, error) {
	return entities.Forecast{}, errors.New("unreachable")
}

func TestDashboardWithoutProfile(t *testing.T) {
	s := NewHomeService(stubProfiles{}, weatherImp.NewMockSource(), i18n.MustLoad(), zap.NewNop())
	d, err := s.Dashboard(context.Background(), "en", nil)
	require.NoError(t, err)

	assert.False(t, d.HasProfile)
	assert.Len(t, d.Insights, 3)
	assert.Len(t, d.Notifications, 5)
	for _, g := range d.Health {
		assert.True(t, g.Placeholder, g.Label)
	}
	require.NotNil(t, d.Today)
	assert.Equal(t, "Mon", d.Today.Day)
}

func TestDashboardFromProfile(t *testing.T) {
	p := entities.NewFarmProfile()
	p.FarmerName = "Asha"
	p.FarmSize = entities.Float(5.2)
	p.SoilPH = entities.Float(7)
	p.SoilMoisture = entities.Float(40)

	s := NewHomeService(stubProfiles{p: &p}, weatherImp.NewMockSource(), i18n.MustLoad(), zap.NewNop())
	d, err := s.Dashboard(context.Background(), "hi", map[int]bool{2: true, 5: true})
	require.NoError(t, err)

	assert.Equal(t, "Asha", d.FarmerName)
	require.Len(t, d.Health, 3)
	assert.Equal(t, "pH 7", d.Health[0].Display)
	assert.Equal(t, 50.0, d.Health[0].Percent)
	assert.Equal(t, "5.2 acres", d.Health[1].Display)
	assert.Equal(t, "40%", d.Health[2].Display)
	assert.False(t, d.Health[2].Placeholder)

	require.Len(t, d.Notifications, 3)
	assert.Equal(t, 1, d.Notifications[0].ID)
	assert.Equal(t, "आपकी मिट्टी स्वास्थ्य रिपोर्ट तैयार है", d.Notifications[0].Message)
}

func TestDashboardSurvivesForecastFailure(t *testing.T) {
	s := NewHomeService(stubProfiles{warning: "profile storage unavailable"}, downForecast{}, i18n.MustLoad(), zap.NewNop())
	d, err := s.Dashboard(context.Background(), "en", nil)
	require.NoError(t, err)
	assert.Nil(t, d.Today)
	assert.Equal(t, "profile storage unavailable", d.Warning)
}

func TestNotificationExists(t *testing.T) {
	s := NewHomeService(stubProfiles{}, weatherImp.NewMockSource(), i18n.MustLoad(), zap.NewNop())
	assert.True(t, s.NotificationExists(3))
	assert.False(t, s.NotificationExists(42))
}
