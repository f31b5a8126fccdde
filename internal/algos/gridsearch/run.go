package gridsearch

import (
	"fmt"

	"pathviz/internal/core"

	"github.com/zyedidia/generic/heap"
)

// run holds the bookkeeping every variant shares: the grid, the endpoints,
// the predecessor map and the terminal outcome.
type run struct {
	grid        *core.Grid
	start, goal core.Position
	cameFrom    map[core.Position]core.Position

	expanded int
	finished bool
	result   core.Signal
	path     []core.Position
}

func newRun(name string, g *core.Grid, start, goal core.Position) (run, error) {
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return run{}, fmt.Errorf("gridsearch: %s: %w", name, err)
	}
	return run{
		grid:     g,
		start:    start,
		goal:     goal,
		cameFrom: make(map[core.Position]core.Position),
	}, nil
}

// open marks p as frontier unless it is an endpoint or already closed.
func (r *run) open(p core.Position) {
	if p == r.start || p == r.goal || r.grid.At(p) == core.Closed {
		return
	}
	r.grid.Mark(p, core.Open)
}

// close marks p as expanded unless it is an endpoint.
func (r *run) close(p core.Position) {
	r.expanded++
	if p == r.start || p == r.goal {
		return
	}
	r.grid.Mark(p, core.Closed)
}

func (r *run) finish(s core.Signal) core.Signal {
	r.finished = true
	r.result = s
	return s
}

// reachGoal paints the path recorded in cameFrom and ends the run.
func (r *run) reachGoal() core.Signal {
	steps := core.ReconstructPath(r.cameFrom, r.goal)
	r.grid.PaintPath(steps, r.start, r.goal)
	r.path = append([]core.Position{r.start}, steps...)
	return r.finish(core.Done)
}

// Path returns the path from start to goal inclusive, or nil before Done.
func (r *run) Path() []core.Position {
	return r.path
}

// Expanded reports how many positions have been closed so far.
func (r *run) Expanded() int {
	return r.expanded
}

// entry is a priority frontier item.
type entry struct {
	pos      core.Position
	priority float64
}

func entryLess(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.pos.Less(b.pos)
}

func newFrontier(seed entry) *heap.Heap[entry] {
	h := heap.New(entryLess)
	h.Push(seed)
	return h
}
