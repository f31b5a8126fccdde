package gridsearch

import (
	"pathviz/internal/core"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"
)

// DFS explores in LIFO order. Each position is pushed at most once; the path
// is whatever the stack order reaches first and carries no length guarantee.
type DFS struct {
	run
	stack   *stack.Stack[core.Position]
	visited mapset.Set[core.Position]
}

// NewDFS prepares a depth-first search from start to goal on g.
func NewDFS(g *core.Grid, start, goal core.Position) (*DFS, error) {
	r, err := newRun("dfs", g, start, goal)
	if err != nil {
		return nil, err
	}
	d := &DFS{run: r, stack: stack.New[core.Position](), visited: mapset.New[core.Position]()}
	d.stack.Push(start)
	d.visited.Put(start)
	return d, nil
}

// Name returns the engine identifier.
func (d *DFS) Name() string { return "dfs" }

// Advance pops one position and pushes its unseen neighbors.
func (d *DFS) Advance() core.Signal {
	if d.finished {
		return d.result
	}
	if d.stack.Size() == 0 {
		return d.finish(core.Fail)
	}
	cur := d.stack.Pop()
	d.close(cur)
	if cur == d.goal {
		return d.reachGoal()
	}
	for _, nb := range d.grid.Neighbors(cur) {
		if d.visited.Has(nb) {
			continue
		}
		d.visited.Put(nb)
		d.cameFrom[nb] = cur
		d.stack.Push(nb)
		d.open(nb)
	}
	return core.Step
}
