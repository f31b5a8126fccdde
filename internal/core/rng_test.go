package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 32; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, 0, a.IntN(0))
}

func TestSampleWithoutReplacement(t *testing.T) {
	g := NewGrid(4, 4)
	free := g.Free()
	picked := NewRNG(7).Sample(free, 10)
	require.Len(t, picked, 10)

	seen := map[Position]bool{}
	for _, p := range picked {
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
	}
	assert.Len(t, NewRNG(7).Sample(free, 100), len(free))
	assert.Equal(t, Position{0, 0}, free[0], "input must not be reordered")
}

func TestFreeCell(t *testing.T) {
	g := NewGrid(3, 3)
	for _, p := range g.Free() {
		g.Set(p, Wall)
	}
	_, ok := NewRNG(1).FreeCell(g)
	assert.False(t, ok)

	g.Set(Position{2, 1}, Empty)
	p, ok := NewRNG(1).FreeCell(g)
	require.True(t, ok)
	assert.Equal(t, Position{2, 1}, p)
}
