package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptFloatDecode(t *testing.T) {
	cases := []struct {
		in    string
		want  OptFloat
		error bool
	}{
		{`5.2`, Float(5.2), false},
		{`"5.2"`, Float(5.2), false},
		{`" 7 "`, Float(7), false},
		{`""`, OptFloat{}, false},
		{`null`, OptFloat{}, false},
		{`"five"`, OptFloat{}, true},
		{`true`, OptFloat{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var o OptFloat
			err := json.Unmarshal([]byte(tc.in), &o)
			if tc.error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, o)
		})
	}
}

func TestProfileNumbersWrittenAsNumbers(t *testing.T) {
	var p FarmProfile
	require.NoError(t, json.Unmarshal([]byte(`{"farmSize":"5.2","soilPH":""}`), &p))

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"farmSize":5.2`)
	assert.Contains(t, string(b), `"soilPH":null`)
}

func TestOptFloatHelpers(t *testing.T) {
	assert.Equal(t, 3.0, OptFloat{}.Or(3))
	assert.Equal(t, 1.5, Float(1.5).Or(3))
	assert.Equal(t, "", OptFloat{}.String())
	assert.Equal(t, "6.5", Float(6.5).String())
}

func TestNewFarmProfileDefaults(t *testing.T) {
	p := NewFarmProfile()
	assert.Equal(t, "acres", p.FarmUnit)
	assert.Equal(t, 0.65, p.NDVIReading.Value)
	assert.True(t, p.WeatherSync)
	assert.True(t, p.MarketSync)
	assert.False(t, p.SatelliteSync)
}
