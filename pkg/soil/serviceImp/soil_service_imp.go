package serviceImp

import (
	"context"
	"fmt"
	"math"

	"vyaas/entities"
	"vyaas/pkg/soil/service"
)

type metric struct {
	name   string
	unit   string
	lo, hi float64
	demo   float64
	// scale converts a value to a 0-100 bar.
	scale float64
	from  func(p *entities.FarmProfile) entities.OptFloat
}

var metrics = []metric{
	{name: "pH Level", lo: 6.0, hi: 7.0, demo: 6.8, scale: 100.0 / 14,
		from: func(p *entities.FarmProfile) entities.OptFloat { return p.SoilPH }},
	{name: "Nitrogen", unit: "%", lo: 80, hi: 100, demo: 85, scale: 1},
	{name: "Phosphorus", unit: "%", lo: 60, hi: 80, demo: 65, scale: 1},
	{name: "Moisture", unit: "%", lo: 40, hi: 60, demo: 45, scale: 1,
		from: func(p *entities.FarmProfile) entities.OptFloat { return p.SoilMoisture }},
}

var advice = []service.Advice{
	{Title: "Add organic compost", Detail: "Increase organic matter content by 2-3%"},
	{Title: "Monitor irrigation", Detail: "Maintain consistent moisture levels"},
}

// Per-status contribution to the overall score; an all-good soil scores 85.
var statusScore = map[service.Status]float64{service.Good: 85, service.Warning: 60, service.Poor: 35}

type profileLoader interface {
	Load(ctx context.Context) (*entities.FarmProfile, error)
}

type SoilSvc struct{ profiles profileLoader }

func NewSoilService(profiles profileLoader) *SoilSvc { return &SoilSvc{profiles: profiles} }

var _ service.SoilService = (*SoilSvc)(nil)

func (s *SoilSvc) Report(ctx context.Context) (service.Report, error) {
	p, err := s.profiles.Load(ctx)
	if err != nil {
		return service.Report{}, err
	}
	r := service.Report{Recommendations: append([]service.Advice(nil), advice...)}
	total := 0.0
	for _, m := range metrics {
		v, measured := m.demo, false
		if p != nil && m.from != nil {
			if o := m.from(p); o.Valid {
				v, measured = o.Value, true
			}
		}
		st := Classify(v, m.lo, m.hi)
		total += statusScore[st]
		if st != service.Good {
			r.Recommendations = append(r.Recommendations, service.Advice{
				Title:  "Adjust " + m.name,
				Detail: fmt.Sprintf("Current %g%s, optimal %g-%g%s", v, m.unit, m.lo, m.hi, m.unit),
			})
		}
		r.Readings = append(r.Readings, service.Reading{
			Name: m.name, Value: v, Unit: m.unit,
			OptimalLo: m.lo, OptimalHi: m.hi,
			Status:   st,
			Percent:  math.Min(100, v*m.scale),
			Measured: measured,
		})
	}
	r.Score = int(math.Round(total / float64(len(metrics))))
	return r, nil
}

// Classify is good inside [lo,hi], warning within 10% of the band width
// outside it, poor beyond.
func Classify(v, lo, hi float64) service.Status {
	if v >= lo && v <= hi {
		return service.Good
	}
	margin := (hi - lo) * 0.1
	if v >= lo-margin && v <= hi+margin {
		return service.Warning
	}
	return service.Poor
}
