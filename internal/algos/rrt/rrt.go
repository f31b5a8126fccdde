// Package rrt grows a rapidly-exploring random tree from the start cell one
// unit grid step at a time until it touches the goal or its iteration budget
// runs out.
package rrt

import (
	"fmt"

	"pathviz/internal/core"
)

// RRT is a resumable tree search. Each Advance is one sampling iteration.
type RRT struct {
	grid        *core.Grid
	start, goal core.Position
	rng         *core.RNG
	cfg         Config

	free   []core.Position
	nodes  []core.Position
	parent map[core.Position]core.Position

	iters    int
	rejected int
	finished bool
	result   core.Signal
	path     []core.Position
}

// New prepares a tree rooted at start. A nil rng falls back to a fixed seed.
func New(g *core.Grid, start, goal core.Position, rng *core.RNG, cfg Config) (*RRT, error) {
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return nil, fmt.Errorf("rrt: %w", err)
	}
	if rng == nil {
		rng = core.NewRNG(1)
	}
	if cfg.MaxIters <= 0 {
		cfg.MaxIters = DefaultConfig().MaxIters
	}
	return &RRT{
		grid:   g,
		start:  start,
		goal:   goal,
		rng:    rng,
		cfg:    cfg,
		free:   g.Free(),
		nodes:  []core.Position{start},
		parent: make(map[core.Position]core.Position),
	}, nil
}

// Name returns the engine identifier.
func (t *RRT) Name() string { return "rrt" }

// Advance runs one sampling iteration. Rejected samples still count against
// the budget and return Step.
func (t *RRT) Advance() core.Signal {
	if t.finished {
		return t.result
	}
	if t.iters >= t.cfg.MaxIters {
		return t.finish(core.Fail)
	}
	t.iters++

	qRand := t.free[t.rng.IntN(len(t.free))]
	qNear := t.nearest(qRand)
	qNew := core.Position{
		Row: qNear.Row + core.Sign(qRand.Row-qNear.Row),
		Col: qNear.Col + core.Sign(qRand.Col-qNear.Col),
	}
	if !t.grid.Passable(qNew) || t.contains(qNew) {
		t.rejected++
		return core.Step
	}

	t.parent[qNew] = qNear
	t.nodes = append(t.nodes, qNew)
	if qNew != t.goal {
		t.grid.Mark(qNew, core.Open)
		return core.Step
	}

	steps := core.ReconstructPath(t.parent, t.goal)
	t.grid.PaintPath(steps, t.start, t.goal)
	t.path = append([]core.Position{t.start}, steps...)
	return t.finish(core.Done)
}

// nearest returns the tree vertex closest to q. Ties go to the vertex that
// was inserted first.
func (t *RRT) nearest(q core.Position) core.Position {
	best := t.nodes[0]
	bestDist := core.Euclidean(best, q)
	for _, n := range t.nodes[1:] {
		if d := core.Euclidean(n, q); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

func (t *RRT) contains(p core.Position) bool {
	if p == t.start {
		return true
	}
	_, ok := t.parent[p]
	return ok
}

func (t *RRT) finish(s core.Signal) core.Signal {
	t.finished = true
	t.result = s
	return s
}

// Edges returns the parent-child links of the tree in insertion order.
func (t *RRT) Edges() []core.Edge {
	edges := make([]core.Edge, 0, len(t.nodes)-1)
	for _, n := range t.nodes[1:] {
		edges = append(edges, core.Edge{From: t.parent[n], To: n})
	}
	return edges
}

// Path returns the tree path from start to goal inclusive, or nil before Done.
func (t *RRT) Path() []core.Position { return t.path }

// Iterations reports how many sampling iterations have been consumed.
func (t *RRT) Iterations() int { return t.iters }

// Rejected reports how many samples produced no new vertex.
func (t *RRT) Rejected() int { return t.rejected }

// Size returns the number of tree vertices including the root.
func (t *RRT) Size() int { return len(t.nodes) }

func init() {
	core.Register("rrt", func(g *core.Grid, start, goal core.Position, rng *core.RNG, cfg map[string]string) (core.Engine, error) {
		t, err := New(g, start, goal, rng, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}
