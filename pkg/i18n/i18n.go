// Package i18n serves the interface string tables. Lookups fall back to
// English, then to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const Fallback = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

type Bundle struct {
	tables map[string]map[string]string
}

func Load() (*Bundle, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	b := &Bundle{tables: map[string]map[string]string{}}
	for _, e := range entries {
		raw, err := localeFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, err
		}
		t := map[string]string{}
		if err := yaml.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("locale %s: %w", e.Name(), err)
		}
		b.tables[strings.TrimSuffix(e.Name(), ".yaml")] = t
	}
	if _, ok := b.tables[Fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q missing", Fallback)
	}
	return b, nil
}

func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bundle) Languages() []string {
	out := make([]string, 0, len(b.tables))
	for l := range b.tables {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func (b *Bundle) Has(lang string) bool {
	_, ok := b.tables[lang]
	return ok
}

func (b *Bundle) T(lang, key string) string {
	if v, ok := b.tables[lang][key]; ok {
		return v
	}
	if v, ok := b.tables[Fallback][key]; ok {
		return v
	}
	return key
}

// Table returns every English key resolved in lang.
func (b *Bundle) Table(lang string) map[string]string {
	out := make(map[string]string, len(b.tables[Fallback]))
	for k := range b.tables[Fallback] {
		out[k] = b.T(lang, k)
	}
	return out
}
