package prm

import (
	"errors"
	"testing"

	"pathviz/internal/core"
	"pathviz/internal/monitoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	m.Run()
}

func endpoints(g *core.Grid, start, goal core.Position) {
	g.Set(start, core.Start)
	g.Set(goal, core.Goal)
}

func TestFromMap(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
	c := FromMap(map[string]string{"samples": "50", "k": "4"})
	assert.Equal(t, Config{Samples: 50, K: 4}, c)
	assert.Equal(t, DefaultConfig(), FromMap(map[string]string{"samples": "0", "k": "x"}))
}

func TestFullyWalledGridFailsWithoutSearch(t *testing.T) {
	g := core.NewGrid(4, 4)
	start, goal := core.Position{Row: 0, Col: 0}, core.Position{Row: 3, Col: 3}
	p, err := New(g, start, goal, core.NewRNG(1), DefaultConfig())
	require.NoError(t, err)

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Set(core.Position{Row: r, Col: c}, core.Wall)
		}
	}
	lines, restore := monitoring.Capture()
	defer restore()

	assert.Equal(t, core.Fail, p.Advance())
	assert.Equal(t, core.Fail, p.Advance())
	assert.Nil(t, p.Roadmap())
	assert.Nil(t, p.Edges())
	assert.Equal(t, 16, g.Count(core.Wall))
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "no free cells")

	_, err = BuildRoadmap(g, core.NewRNG(1), start, goal, DefaultConfig())
	assert.True(t, errors.Is(err, ErrNoFreeCells))
}

func TestRoadmapEdgesAreSymmetricAndVisible(t *testing.T) {
	g := core.NewGrid(20, 20)
	for r := 3; r < 17; r++ {
		g.Set(core.Position{Row: r, Col: 10}, core.Wall)
	}
	start, goal := core.Position{Row: 10, Col: 2}, core.Position{Row: 10, Col: 17}
	rm, err := BuildRoadmap(g, core.NewRNG(4), start, goal, Config{Samples: 80, K: 6})
	require.NoError(t, err)

	assert.Contains(t, rm.Vertices, start)
	assert.Contains(t, rm.Vertices, goal)
	assert.LessOrEqual(t, len(rm.Vertices), 82)
	require.NotEmpty(t, rm.Edges())

	seen := map[core.Edge]bool{}
	for _, e := range rm.Edges() {
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
		assert.True(t, g.LineOfSight(e.From, e.To), "edge %v crosses a wall", e)
		assert.True(t, hasLink(rm.Adjacent(e.From), e.To), "missing %v -> %v", e.From, e.To)
		assert.True(t, hasLink(rm.Adjacent(e.To), e.From), "missing %v -> %v", e.To, e.From)
	}
	for _, v := range rm.Vertices {
		assert.LessOrEqual(t, len(rm.Adjacent(v)), len(rm.Vertices)-1)
		for _, l := range rm.Adjacent(v) {
			assert.InDelta(t, core.Euclidean(v, l.To), l.Cost, 1e-12)
		}
	}
}

func hasLink(links []Link, to core.Position) bool {
	for _, l := range links {
		if l.To == to {
			return true
		}
	}
	return false
}

func TestNearestExcludesSelf(t *testing.T) {
	g := core.NewGrid(1, 6)
	start, goal := core.Position{Row: 0, Col: 0}, core.Position{Row: 0, Col: 5}
	rm, err := BuildRoadmap(g, core.NewRNG(2), start, goal, Config{Samples: 6, K: 1})
	require.NoError(t, err)
	assert.Len(t, rm.Vertices, 6)
	for _, v := range rm.Vertices {
		for _, l := range rm.Adjacent(v) {
			assert.NotEqual(t, v, l.To)
			assert.Equal(t, 1.0, l.Cost, "each vertex links its adjacent cell")
		}
	}
}

func TestDoneOnOpenGrid(t *testing.T) {
	g := core.NewGrid(10, 10)
	start, goal := core.Position{Row: 0, Col: 0}, core.Position{Row: 9, Col: 9}
	endpoints(g, start, goal)
	p, err := New(g, start, goal, core.NewRNG(8), DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, core.Step, p.Advance(), "construction consumes one advance")
	require.NotNil(t, p.Roadmap())
	sig, _ := core.Drain(p, 0)
	require.Equal(t, core.Done, sig)

	path := p.Path()
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, g.LineOfSight(path[i-1], path[i]))
	}
	assert.Positive(t, g.Count(core.Path))
	assert.Equal(t, core.Start, g.At(start))
	assert.Equal(t, core.Goal, g.At(goal))
	assert.Equal(t, core.Done, p.Advance())
}

func TestFailsWhenRoadmapIsDisconnected(t *testing.T) {
	g := core.NewGrid(8, 8)
	for r := 0; r < 8; r++ {
		g.Set(core.Position{Row: r, Col: 4}, core.Wall)
	}
	start, goal := core.Position{Row: 3, Col: 0}, core.Position{Row: 3, Col: 7}
	endpoints(g, start, goal)
	p, err := New(g, start, goal, core.NewRNG(5), DefaultConfig())
	require.NoError(t, err)

	sig, _ := core.Drain(p, 0)
	assert.Equal(t, core.Fail, sig)
	assert.Nil(t, p.Path())
	assert.Zero(t, g.Count(core.Path))
	assert.Equal(t, 8, g.Count(core.Wall))
	for r := 0; r < 8; r++ {
		for c := 5; c < 8; c++ {
			assert.NotEqual(t, core.Closed, g.At(core.Position{Row: r, Col: c}))
		}
	}
}

func TestPathPaintingLeavesWallsAlone(t *testing.T) {
	g := core.NewGrid(12, 12)
	for c := 0; c < 10; c++ {
		g.Set(core.Position{Row: 6, Col: c}, core.Wall)
	}
	start, goal := core.Position{Row: 1, Col: 1}, core.Position{Row: 10, Col: 1}
	endpoints(g, start, goal)
	walls := g.Snapshot()

	p, err := New(g, start, goal, core.NewRNG(12), DefaultConfig())
	require.NoError(t, err)
	sig, _ := core.Drain(p, 0)
	require.Equal(t, core.Done, sig)

	after := g.Snapshot()
	for i, v := range walls {
		if core.Cell(v) == core.Wall {
			assert.Equal(t, uint8(core.Wall), after[i])
		}
	}
}

func TestRegistered(t *testing.T) {
	g := core.NewGrid(5, 5)
	e, err := core.NewEngine("prm", g, core.Position{}, core.Position{Row: 4, Col: 4}, core.NewRNG(1), map[string]string{"samples": "10"})
	require.NoError(t, err)
	assert.Equal(t, "prm", e.Name())
	_, ok := e.(core.EdgeProvider)
	assert.True(t, ok)

	_, err = core.NewEngine("prm", g, core.Position{}, core.Position{}, nil, nil)
	assert.ErrorIs(t, err, core.ErrSameEndpoints)
}
