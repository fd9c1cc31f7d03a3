package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FarmProfile is the single farm record written by the data-collection form.
// It is persisted as one JSON document; field names follow the form.
type FarmProfile struct {
	FarmerName    string    `json:"farmerName"`
	FarmerContact string    `json:"farmerContact"`
	FarmName      string    `json:"farmName"`
	FarmSize      OptFloat  `json:"farmSize" validate:"omitempty,gte=0"`
	FarmUnit      string    `json:"farmUnit"` // acres|hectares|bigha
	Location      *GeoPoint `json:"location" validate:"omitempty"`
	Address       string    `json:"address"`
	Irrigation    string    `json:"irrigationType"`

	CropType            string `json:"cropType"`
	CropVariety         string `json:"cropVariety"`
	SowingDate          string `json:"sowingDate"`
	ExpectedHarvestDate string `json:"expectedHarvestDate"`
	FertilizerUsed      string `json:"fertilizerUsed"`
	PesticideUsed       string `json:"pesticideUsed"`
	CropHistory         string `json:"cropHistory"`

	SoilType       string   `json:"soilType"` // Sandy|Loam|Clay|Sandy Loam|Clay Loam|...
	SoilPH         OptFloat `json:"soilPH" validate:"omitempty,gte=0,lte=14"`
	SoilMoisture   OptFloat `json:"soilMoisture" validate:"omitempty,gte=0,lte=100"`
	NDVIReading    OptFloat `json:"ndviReading" validate:"omitempty,gte=-1,lte=1"`
	ObservedIssues string   `json:"observedIssues"`
	Notes          string   `json:"notes"`

	WeatherSync   bool `json:"weatherSync"`
	MarketSync    bool `json:"marketSync"`
	SatelliteSync bool `json:"satelliteSync"`
}

type GeoPoint struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// NewFarmProfile returns the blank form defaults.
func NewFarmProfile() FarmProfile {
	return FarmProfile{
		FarmUnit:    "acres",
		NDVIReading: Float(0.65),
		WeatherSync: true,
		MarketSync:  true,
	}
}

// OptFloat is an optional number. It decodes from a JSON number, a numeric
// string, an empty string or null, and always encodes as a number or null.
type OptFloat struct {
	Value float64
	Valid bool
}

func Float(v float64) OptFloat { return OptFloat{Value: v, Valid: true} }

func (o OptFloat) Or(def float64) float64 {
	if !o.Valid {
		return def
	}
	return o.Value
}

func (o OptFloat) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*o = OptFloat{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*o = OptFloat{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		*o = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Float(v)
	return nil
}
