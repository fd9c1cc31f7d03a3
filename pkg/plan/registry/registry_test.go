package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	r := MustBuiltin()
	assert.Equal(t, []string{"Mustard", "Soybean", "Sunflower"}, r.Crops())
	assert.Equal(t, "Mustard", r.Default())
	for _, c := range r.Crops() {
		steps, _, ok := r.Lookup(c)
		require.True(t, ok)
		require.Len(t, steps, 3)
		for i, s := range steps {
			assert.Equal(t, i+1, s.Step)
			assert.NotEmpty(t, s.Title)
			assert.NotEmpty(t, s.Description)
			assert.NotEmpty(t, s.Timeline)
		}
	}
}

func TestLookupIsDeterministic(t *testing.T) {
	r := MustBuiltin()
	a, _, _ := r.Lookup("Soybean")
	b, _, _ := r.Lookup("Soybean")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("plans differ (-first +second):\n%s", diff)
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	r := MustBuiltin()
	steps, source, ok := r.Lookup("mustard")
	assert.False(t, ok, "match is exact")
	assert.Equal(t, "Mustard", source)

	def, _, _ := r.Lookup("Mustard")
	assert.Equal(t, def, steps)
}

func TestLookupReturnsCopy(t *testing.T) {
	r := MustBuiltin()
	steps, _, _ := r.Lookup("Sunflower")
	steps[0].Title = "changed"

	again, _, _ := r.Lookup("Sunflower")
	assert.Equal(t, "Soil Preparation", again[0].Title)
}

func TestParseRejectsBadTables(t *testing.T) {
	_, err := Parse([]byte(`[]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
- crop: A
  steps: [{step: 1, title: t}]
- crop: A
  steps: [{step: 1, title: t}]
`))
	assert.ErrorContains(t, err, "twice")

	_, err = Parse([]byte(`- crop: A`))
	assert.ErrorContains(t, err, "no steps")
}
