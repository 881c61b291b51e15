package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPseudoRandomDeterminism(t *testing.T) {
	a := NewPseudoRandom(42)
	b := NewPseudoRandom(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.NextUint64(), b.NextUint64(), "draw %d diverged", i)
	}
}

func TestPseudoRandomSeedsDiffer(t *testing.T) {
	a := NewPseudoRandom(1)
	b := NewPseudoRandom(2)
	assert.NotEqual(t, a.NextUint64(), b.NextUint64())
}

func TestIntNBounds(t *testing.T) {
	r := NewPseudoRandom(7)
	for i := 0; i < 1000; i++ {
		v := r.IntN(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestIntNPanicsOnNonPositive(t *testing.T) {
	r := NewPseudoRandom(7)
	assert.Panics(t, func() { r.IntN(0) })
}

func TestChanceAlwaysWithOneInOne(t *testing.T) {
	r := NewPseudoRandom(7)
	for i := 0; i < 50; i++ {
		require.True(t, r.Chance(1))
	}
}

func TestShufflePermutes(t *testing.T) {
	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r := NewPseudoRandom(99)
	r.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := make(map[int]bool)
	for _, v := range vals {
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}
