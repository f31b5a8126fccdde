package gridsearch

import (
	"strings"
	"testing"

	"pathviz/internal/core"

	"github.com/stretchr/testify/require"
)

// parseGrid builds a grid from rows of '.', '#', 'S' and 'G'.
func parseGrid(t *testing.T, rows ...string) (*core.Grid, core.Position, core.Position) {
	t.Helper()
	g := core.NewGrid(len(rows), len(rows[0]))
	var start, goal core.Position
	for r, line := range rows {
		require.Len(t, line, g.Cols, "row %d", r)
		for c, ch := range line {
			p := core.Position{Row: r, Col: c}
			switch ch {
			case '#':
				g.Set(p, core.Wall)
			case 'S':
				g.Set(p, core.Start)
				start = p
			case 'G':
				g.Set(p, core.Goal)
				goal = p
			}
		}
	}
	return g, start, goal
}

func render(g *core.Grid) string {
	glyph := map[core.Cell]byte{
		core.Empty: '.', core.Wall: '#', core.Start: 'S', core.Goal: 'G',
		core.Open: 'o', core.Closed: 'x', core.Path: '*',
	}
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(glyph[g.At(core.Position{Row: r, Col: c})])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

type pathEngine interface {
	core.Engine
	Path() []core.Position
}

var constructors = map[string]func(*core.Grid, core.Position, core.Position) (pathEngine, error){
	"bfs":      func(g *core.Grid, s, e core.Position) (pathEngine, error) { return wrap(NewBFS(g, s, e)) },
	"dfs":      func(g *core.Grid, s, e core.Position) (pathEngine, error) { return wrap(NewDFS(g, s, e)) },
	"dijkstra": func(g *core.Grid, s, e core.Position) (pathEngine, error) { return wrap(NewDijkstra(g, s, e)) },
	"greedy":   func(g *core.Grid, s, e core.Position) (pathEngine, error) { return wrap(NewGreedy(g, s, e)) },
	"astar":    func(g *core.Grid, s, e core.Position) (pathEngine, error) { return wrap(NewAStar(g, s, e)) },
}

func wrap[E pathEngine](e E, err error) (pathEngine, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(t *testing.T, name string, g *core.Grid, start, goal core.Position) pathEngine {
	t.Helper()
	e, err := constructors[name](g, start, goal)
	require.NoError(t, err)
	return e
}

// requireValidPath checks adjacency, wall exclusion and endpoints.
func requireValidPath(t *testing.T, g *core.Grid, path []core.Position, start, goal core.Position) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i, p := range path {
		require.True(t, g.Passable(p), "path cell %v is blocked", p)
		if i > 0 {
			require.Equal(t, 1, core.Manhattan(path[i-1], p), "step %v -> %v", path[i-1], p)
		}
	}
}
