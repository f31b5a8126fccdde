package gridsearch

import (
	"pathviz/internal/core"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Greedy orders the frontier purely by Manhattan distance to the goal. A
// position is queued only the first time it is discovered, so its
// predecessor never changes and the path length carries no guarantee.
type Greedy struct {
	run
	frontier *heap.Heap[entry]
	visited  mapset.Set[core.Position]
}

// NewGreedy prepares a greedy best-first search from start to goal on g.
func NewGreedy(g *core.Grid, start, goal core.Position) (*Greedy, error) {
	r, err := newRun("greedy", g, start, goal)
	if err != nil {
		return nil, err
	}
	seed := entry{pos: start, priority: float64(core.Manhattan(start, goal))}
	return &Greedy{run: r, frontier: newFrontier(seed), visited: mapset.New[core.Position]()}, nil
}

// Name returns the engine identifier.
func (gr *Greedy) Name() string { return "greedy" }

// Advance expands the frontier position that looks closest to the goal.
func (gr *Greedy) Advance() core.Signal {
	if gr.finished {
		return gr.result
	}
	for {
		top, ok := gr.frontier.Pop()
		if !ok {
			return gr.finish(core.Fail)
		}
		if gr.visited.Has(top.pos) {
			continue
		}
		gr.visited.Put(top.pos)
		gr.close(top.pos)
		if top.pos == gr.goal {
			return gr.reachGoal()
		}
		for _, nb := range gr.grid.Neighbors(top.pos) {
			if gr.visited.Has(nb) {
				continue
			}
			if _, discovered := gr.cameFrom[nb]; discovered {
				continue
			}
			gr.cameFrom[nb] = top.pos
			gr.frontier.Push(entry{pos: nb, priority: float64(core.Manhattan(nb, gr.goal))})
			gr.open(nb)
		}
		return core.Step
	}
}
