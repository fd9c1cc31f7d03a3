package service

import "context"

type Status string

const (
	Good    Status = "good"
	Warning Status = "warning"
	Poor    Status = "poor"
)

// Reading is one soil metric against its optimal band.
type Reading struct {
	Name      string  `json:"name"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	OptimalLo float64 `json:"optimal_lo"`
	OptimalHi float64 `json:"optimal_hi"`
	Status    Status  `json:"status"`
	Percent   float64 `json:"percent"`
	Measured  bool    `json:"measured"` // false when the demo value is shown
}

type Advice struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type Report struct {
	Score           int       `json:"score"`
	Readings        []Reading `json:"readings"`
	Recommendations []Advice  `json:"recommendations"`
}

type SoilService interface {
	Report(ctx context.Context) (Report, error)
}
