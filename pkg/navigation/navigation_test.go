package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name    string
		current Tab
		ev      Event
		auth    bool
		want    Tab
		wantErr error
	}{
		{"select home anonymous", Profile, Event{Kind: Select, Target: Home}, false, Home, nil},
		{"select gated anonymous", Home, Event{Kind: Select, Target: SoilHealth}, false, Home, ErrAuthRequired},
		{"select gated signed in", Home, Event{Kind: Select, Target: SoilHealth}, true, SoilHealth, nil},
		{"generate", DataCollection, Event{Kind: GenerateRecommendations}, true, CropRecommendation, nil},
		{"generate anonymous", DataCollection, Event{Kind: GenerateRecommendations}, false, DataCollection, ErrAuthRequired},
		{"compare", CropRecommendation, Event{Kind: CompareCrops}, true, MarketInsights, nil},
		{"compare ignores target", CropRecommendation, Event{Kind: CompareCrops, Target: Profile}, true, MarketInsights, nil},
		{"unknown tab", Home, Event{Kind: Select, Target: "settings"}, true, Home, ErrUnknownTab},
		{"unknown event", Home, Event{Kind: "jump"}, true, Home, ErrUnknownEvent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transition(tc.current, tc.ev, tc.auth)
			assert.Equal(t, tc.want, got)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTabCoversAll(t *testing.T) {
	for _, tab := range Tabs {
		got, err := ParseTab(string(tab))
		assert.NoError(t, err)
		assert.Equal(t, tab, got)
	}
	assert.False(t, Gated(Home))
	assert.True(t, Gated(Profile))
}
