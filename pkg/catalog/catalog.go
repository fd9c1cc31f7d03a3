package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"vyaas/entities"
)

//go:embed crops.yaml
var builtinYAML []byte

// Catalog is the static crop table plus the soil categories the
// recommendation rule recognizes. It is read-only after loading.
type Catalog struct {
	RecognizedSoils []string                    `json:"recognized_soils" yaml:"recognized_soils"`
	Crops           []entities.CropCatalogEntry `json:"crops" yaml:"crops"`
}

// Builtin returns the compiled-in catalog.
func Builtin() (*Catalog, error) { return Parse(builtinYAML) }

// MustBuiltin panics when the compiled-in table is broken.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads an override file (.yaml, .yml or .xlsx). An empty path means
// the builtin catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Parse(b)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
}

func Parse(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) Validate() error {
	seen := map[string]bool{}
	for i, e := range c.Crops {
		if strings.TrimSpace(e.ID) == "" {
			return fmt.Errorf("crop #%d: empty id", i+1)
		}
		if seen[e.ID] {
			return fmt.Errorf("crop %s: duplicate id", e.ID)
		}
		seen[e.ID] = true
		if e.Name == "" {
			return fmt.Errorf("crop %s: empty name", e.ID)
		}
		for name, r := range map[string]entities.Range{"yield": e.Yield, "profit": e.Profit, "growth_duration": e.GrowthDuration} {
			if !r.Valid() {
				return fmt.Errorf("crop %s: %s range lo %d > hi %d", e.ID, name, r.Lo, r.Hi)
			}
		}
	}
	return nil
}

func (c *Catalog) Recognizes(soil string) bool {
	for _, s := range c.RecognizedSoils {
		if s == soil {
			return true
		}
	}
	return false
}

var ErrUnknownCrop = errors.New("unknown crop")

func (c *Catalog) ByID(id string) (entities.CropCatalogEntry, error) {
	for _, e := range c.Crops {
		if e.ID == id {
			return e, nil
		}
	}
	return entities.CropCatalogEntry{}, fmt.Errorf("%w: %s", ErrUnknownCrop, id)
}

func (c *Catalog) Len() int { return len(c.Crops) }
