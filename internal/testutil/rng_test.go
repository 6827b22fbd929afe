package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillInts(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]int, 64)
	rng.FillInts(v, -5, 5)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, -5)
		assert.Less(t, x, 5)
	}
}

func TestFillFloat64s(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 64)
	rng.FillFloat64s(v, -1, 1)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, -1.0)
		assert.Less(t, x, 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	assert.Equal(t, int64(42), rng.Seed())

	first := make([]int, 16)
	rng.FillInts(first, 0, 1000)

	rng.Reset()

	second := make([]int, 16)
	rng.FillInts(second, 0, 1000)

	assert.Equal(t, first, second)
}
