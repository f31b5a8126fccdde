// Package mapgen builds random obstacle maps whose free space stays a single
// 4-connected region.
package mapgen

import (
	"pathviz/internal/core"
	"pathviz/internal/monitoring"

	"github.com/zyedidia/generic/queue"
)

// DefaultWallProb is the chance that a visited cell becomes a wall.
const DefaultWallProb = 0.32

// Generate clears g and then visits every cell in shuffled order. With
// probability wallProb the cell becomes a wall, and the wall is kept only if
// the remaining free cells are still connected. It returns the number of
// walls placed.
func Generate(g *core.Grid, rng *core.RNG, wallProb float64) int {
	g.Clear()
	cells := make([]core.Position, 0, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cells = append(cells, core.Position{Row: r, Col: c})
		}
	}
	rng.Shuffle(cells)

	walls, rejected := 0, 0
	for _, p := range cells {
		if rng.Float64() >= wallProb {
			continue
		}
		g.Set(p, core.Wall)
		if !Connected(g) {
			g.Set(p, core.Empty)
			rejected++
			continue
		}
		walls++
	}
	monitoring.Logf("mapgen: %dx%d grid, %d walls kept, %d rejected", g.Rows, g.Cols, walls, rejected)
	return walls
}

// Connected reports whether every non-wall cell of g is reachable from every
// other one through 4-neighbors. A grid with no free cells is not connected.
func Connected(g *core.Grid) bool {
	free := g.Free()
	if len(free) == 0 {
		return false
	}
	seen := make([]bool, g.Rows*g.Cols)
	q := queue.New[core.Position]()
	q.Enqueue(free[0])
	seen[g.Index(free[0])] = true
	reached := 1
	for !q.Empty() {
		cur := q.Dequeue()
		for _, nb := range g.Neighbors(cur) {
			if seen[g.Index(nb)] {
				continue
			}
			seen[g.Index(nb)] = true
			reached++
			q.Enqueue(nb)
		}
	}
	return reached == len(free)
}
