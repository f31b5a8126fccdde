// Package prm implements a probabilistic roadmap planner. The roadmap is
// built on the first Advance and then searched with Dijkstra one vertex per
// Advance.
package prm

import (
	"fmt"
	"math"

	"pathviz/internal/core"
	"pathviz/internal/monitoring"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

type item struct {
	pos  core.Position
	dist float64
}

func itemLess(a, b item) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.pos.Less(b.pos)
}

// PRM is a resumable roadmap search.
type PRM struct {
	grid        *core.Grid
	start, goal core.Position
	rng         *core.RNG
	cfg         Config

	roadmap  *Roadmap
	frontier *heap.Heap[item]
	dist     map[core.Position]float64
	cameFrom map[core.Position]core.Position
	visited  mapset.Set[core.Position]

	finished bool
	result   core.Signal
	path     []core.Position
}

// New prepares a roadmap search. No roadmap is built until the first
// Advance. A nil rng falls back to a fixed seed.
func New(g *core.Grid, start, goal core.Position, rng *core.RNG, cfg Config) (*PRM, error) {
	if err := core.ValidateEndpoints(g, start, goal); err != nil {
		return nil, fmt.Errorf("prm: %w", err)
	}
	if rng == nil {
		rng = core.NewRNG(1)
	}
	def := DefaultConfig()
	if cfg.Samples <= 0 {
		cfg.Samples = def.Samples
	}
	if cfg.K <= 0 {
		cfg.K = def.K
	}
	return &PRM{grid: g, start: start, goal: goal, rng: rng, cfg: cfg}, nil
}

// Name returns the engine identifier.
func (p *PRM) Name() string { return "prm" }

// Advance builds the roadmap on the first call and afterwards settles one
// roadmap vertex per call.
func (p *PRM) Advance() core.Signal {
	if p.finished {
		return p.result
	}
	if p.roadmap == nil {
		return p.build()
	}
	for {
		top, ok := p.frontier.Pop()
		if !ok {
			return p.finish(core.Fail)
		}
		if p.visited.Has(top.pos) {
			continue
		}
		p.visited.Put(top.pos)
		p.mark(top.pos, core.Closed)
		if top.pos == p.goal {
			return p.reachGoal()
		}
		for _, l := range p.roadmap.Adjacent(top.pos) {
			nd := top.dist + l.Cost
			known, seen := p.dist[l.To]
			if !seen {
				known = math.Inf(1)
			}
			if nd >= known {
				continue
			}
			p.dist[l.To] = nd
			p.cameFrom[l.To] = top.pos
			p.frontier.Push(item{pos: l.To, dist: nd})
			p.mark(l.To, core.Open)
		}
		return core.Step
	}
}

func (p *PRM) build() core.Signal {
	rm, err := BuildRoadmap(p.grid, p.rng, p.start, p.goal, p.cfg)
	if err != nil {
		monitoring.Logf("roadmap construction failed: %v", err)
		return p.finish(core.Fail)
	}
	p.roadmap = rm
	p.frontier = heap.New(itemLess)
	p.frontier.Push(item{pos: p.start})
	p.dist = map[core.Position]float64{p.start: 0}
	p.cameFrom = make(map[core.Position]core.Position)
	p.visited = mapset.New[core.Position]()
	return core.Step
}

func (p *PRM) mark(pos core.Position, c core.Cell) {
	if pos == p.start || pos == p.goal {
		return
	}
	p.grid.Mark(pos, c)
}

// reachGoal paints every rasterized cell of the vertex path except walls and
// the two endpoints.
func (p *PRM) reachGoal() core.Signal {
	p.path = append([]core.Position{p.start}, core.ReconstructPath(p.cameFrom, p.goal)...)
	first, last := p.path[0], p.path[len(p.path)-1]
	for i := 1; i < len(p.path); i++ {
		for _, c := range core.SegmentCells(p.path[i-1], p.path[i]) {
			if c == first || c == last || p.grid.At(c) == core.Wall {
				continue
			}
			p.grid.Mark(c, core.Path)
		}
	}
	return p.finish(core.Done)
}

func (p *PRM) finish(s core.Signal) core.Signal {
	p.finished = true
	p.result = s
	return s
}

// Roadmap returns the roadmap, or nil before the first Advance.
func (p *PRM) Roadmap() *Roadmap { return p.roadmap }

// Edges returns the roadmap edges for drawing.
func (p *PRM) Edges() []core.Edge {
	if p.roadmap == nil {
		return nil
	}
	return p.roadmap.Edges()
}

// Path returns the roadmap vertices from start to goal, or nil before Done.
func (p *PRM) Path() []core.Position { return p.path }

func init() {
	core.Register("prm", func(g *core.Grid, start, goal core.Position, rng *core.RNG, cfg map[string]string) (core.Engine, error) {
		p, err := New(g, start, goal, rng, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
