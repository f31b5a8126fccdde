package gridsearch

import (
	"pathviz/internal/core"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Dijkstra orders the frontier by accumulated unit cost. Duplicate entries
// may coexist in the heap; entries for already visited positions are
// discarded when popped.
type Dijkstra struct {
	run
	frontier *heap.Heap[entry]
	dist     map[core.Position]float64
	visited  mapset.Set[core.Position]
}

// NewDijkstra prepares a uniform-cost search from start to goal on g.
func NewDijkstra(g *core.Grid, start, goal core.Position) (*Dijkstra, error) {
	r, err := newRun("dijkstra", g, start, goal)
	if err != nil {
		return nil, err
	}
	return &Dijkstra{
		run:      r,
		frontier: newFrontier(entry{pos: start}),
		dist:     map[core.Position]float64{start: 0},
		visited:  mapset.New[core.Position](),
	}, nil
}

// Name returns the engine identifier.
func (d *Dijkstra) Name() string { return "dijkstra" }

// Dist returns the best known cost from start to p.
func (d *Dijkstra) Dist(p core.Position) (float64, bool) {
	v, ok := d.dist[p]
	return v, ok
}

// Advance settles the cheapest unvisited frontier position.
func (d *Dijkstra) Advance() core.Signal {
	if d.finished {
		return d.result
	}
	for {
		top, ok := d.frontier.Pop()
		if !ok {
			return d.finish(core.Fail)
		}
		if d.visited.Has(top.pos) {
			continue
		}
		d.visited.Put(top.pos)
		d.close(top.pos)
		if top.pos == d.goal {
			return d.reachGoal()
		}
		for _, nb := range d.grid.Neighbors(top.pos) {
			nd := top.priority + 1
			if known, seen := d.dist[nb]; seen && nd >= known {
				continue
			}
			d.dist[nb] = nd
			d.cameFrom[nb] = top.pos
			d.frontier.Push(entry{pos: nb, priority: nd})
			d.open(nb)
		}
		return core.Step
	}
}
