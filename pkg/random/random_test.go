package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetweenIsInclusive(t *testing.T) {
	src := New(42)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := Between(src, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestBelowExcludesUpperBound(t *testing.T) {
	src := New(7)
	for i := 0; i < 2000; i++ {
		v := Below(src, -5, 15)
		assert.GreaterOrEqual(t, v, -5)
		assert.Less(t, v, 15)
	}
}

func TestDegenerateRanges(t *testing.T) {
	src := New(1)
	assert.Equal(t, 9, Between(src, 9, 9))
	assert.Equal(t, 9, Below(src, 9, 9))
	assert.Equal(t, 9, Between(src, 9, 2))
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
