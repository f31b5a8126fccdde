package gridsearch

import (
	"math"

	"pathviz/internal/core"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// AStar orders the frontier by g + Manhattan(., goal). Manhattan distance is
// admissible and consistent under unit cost, so the first time the goal is
// popped its path is shortest.
type AStar struct {
	run
	frontier *heap.Heap[entry]
	gScore   map[core.Position]float64
	closed   mapset.Set[core.Position]
}

// NewAStar prepares an A* search from start to goal on g.
func NewAStar(g *core.Grid, start, goal core.Position) (*AStar, error) {
	r, err := newRun("astar", g, start, goal)
	if err != nil {
		return nil, err
	}
	seed := entry{pos: start, priority: float64(core.Manhattan(start, goal))}
	return &AStar{
		run:      r,
		frontier: newFrontier(seed),
		gScore:   map[core.Position]float64{start: 0},
		closed:   mapset.New[core.Position](),
	}, nil
}

// Name returns the engine identifier.
func (a *AStar) Name() string { return "astar" }

// GScore returns the best known cost from start to p.
func (a *AStar) GScore(p core.Position) (float64, bool) {
	v, ok := a.gScore[p]
	return v, ok
}

// Advance expands the frontier position with the lowest f score.
func (a *AStar) Advance() core.Signal {
	if a.finished {
		return a.result
	}
	for {
		top, ok := a.frontier.Pop()
		if !ok {
			return a.finish(core.Fail)
		}
		if a.closed.Has(top.pos) {
			continue
		}
		a.closed.Put(top.pos)
		a.close(top.pos)
		if top.pos == a.goal {
			return a.reachGoal()
		}
		g := a.gScore[top.pos]
		for _, nb := range a.grid.Neighbors(top.pos) {
			tentative := g + 1
			known, seen := a.gScore[nb]
			if !seen {
				known = math.Inf(1)
			}
			if tentative >= known {
				continue
			}
			a.cameFrom[nb] = top.pos
			a.gScore[nb] = tentative
			a.frontier.Push(entry{pos: nb, priority: tentative + float64(core.Manhattan(nb, a.goal))})
			if !a.closed.Has(nb) {
				a.open(nb)
			}
		}
		return core.Step
	}
}
