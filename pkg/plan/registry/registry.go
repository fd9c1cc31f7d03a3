package registry

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"vyaas/entities"
)

//go:embed plans.yaml
var plansYAML []byte

type registered struct {
	Crop  string              `yaml:"crop"`
	Steps []entities.PlanStep `yaml:"steps"`
}

// Registry maps exact crop display names to fixed plans.
type Registry struct {
	order []string
	plans map[string][]entities.PlanStep
}

func Builtin() (*Registry, error) { return Parse(plansYAML) }

func MustBuiltin() *Registry {
	r, err := Builtin()
	if err != nil {
		panic(err)
	}
	return r
}

func Parse(b []byte) (*Registry, error) {
	var rows []registered
	if err := yaml.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("parse plans: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no plans registered")
	}
	r := &Registry{plans: map[string][]entities.PlanStep{}}
	for _, row := range rows {
		if _, dup := r.plans[row.Crop]; dup {
			return nil, fmt.Errorf("plan %q registered twice", row.Crop)
		}
		if len(row.Steps) == 0 {
			return nil, fmt.Errorf("plan %q has no steps", row.Crop)
		}
		r.order = append(r.order, row.Crop)
		r.plans[row.Crop] = row.Steps
	}
	return r, nil
}

// Default is the first registered crop.
func (r *Registry) Default() string { return r.order[0] }

func (r *Registry) Crops() []string { return append([]string(nil), r.order...) }

// Lookup returns a copy of the steps registered for name. ok is false when
// name has no exact match; the steps are then the default crop's.
func (r *Registry) Lookup(name string) (steps []entities.PlanStep, source string, ok bool) {
	source = name
	s, ok := r.plans[name]
	if !ok {
		source = r.Default()
		s = r.plans[source]
	}
	return append([]entities.PlanStep(nil), s...), source, ok
}
