package entities

type WeatherDay struct {
	Day       string  `json:"day"`
	TempC     int     `json:"temp"`
	Condition string  `json:"condition"` // sunny|cloudy|rainy|windy
	RainMM    float64 `json:"rainfall"`
	Humidity  int     `json:"humidity"`
}

type Forecast struct {
	Location string       `json:"location"`
	Days     []WeatherDay `json:"days"`
	Source   string       `json:"source"`
}
