package randutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for range 20 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestShuffle(t *testing.T) {
	t.Parallel()

	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	first, second := slices.Clone(base), slices.Clone(base)
	Shuffle(7, first)
	Shuffle(7, second)

	assert.Equal(t, first, second)
	assert.NotEqual(t, base, first)
	assert.ElementsMatch(t, base, first)
}

func TestDerive(t *testing.T) {
	t.Parallel()

	seen := map[int64]bool{}
	for stream := range uint64(50) {
		seed := Derive(99, stream)
		assert.False(t, seen[seed], "stream %d collided", stream)
		seen[seed] = true
		assert.Equal(t, seed, Derive(99, stream))
	}
	assert.NotEqual(t, Derive(1, 0), Derive(2, 0))
}
