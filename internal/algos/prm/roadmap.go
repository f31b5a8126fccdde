package prm

import (
	"errors"

	"pathviz/internal/core"
	"pathviz/internal/monitoring"

	"github.com/dhconnelly/rtreego"
	"github.com/zyedidia/generic/mapset"
)

// ErrNoFreeCells is returned when the grid has nowhere to place a vertex.
var ErrNoFreeCells = errors.New("prm: grid has no free cells")

// Link is one outgoing roadmap connection.
type Link struct {
	To   core.Position
	Cost float64
}

// Roadmap is an undirected graph over sampled free cells whose edges are
// straight segments with line of sight.
type Roadmap struct {
	Vertices []core.Position

	adj   map[core.Position][]Link
	edges []core.Edge
}

// vertex stores a roadmap position in the spatial index.
type vertex struct {
	pos  core.Position
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (v *vertex) Bounds() rtreego.Rect { return v.rect }

const pointTolerance = 0.01

func point(p core.Position) rtreego.Point {
	return rtreego.Point{float64(p.Row), float64(p.Col)}
}

// BuildRoadmap samples up to cfg.Samples free cells of g, adds start and goal
// when the sample missed them, and links every vertex to those of its cfg.K
// nearest neighbors it can see.
func BuildRoadmap(g *core.Grid, rng *core.RNG, start, goal core.Position, cfg Config) (*Roadmap, error) {
	free := g.Free()
	if len(free) == 0 {
		return nil, ErrNoFreeCells
	}
	samples := rng.Sample(free, cfg.Samples)
	seen := mapset.New[core.Position]()
	for _, p := range samples {
		seen.Put(p)
	}
	for _, p := range []core.Position{start, goal} {
		if !seen.Has(p) {
			seen.Put(p)
			samples = append(samples, p)
		}
	}

	rm := &Roadmap{Vertices: samples, adj: make(map[core.Position][]Link, len(samples))}
	tree := rtreego.NewTree(2, 4, 16)
	for _, p := range samples {
		rm.adj[p] = nil
		tree.Insert(&vertex{pos: p, rect: point(p).ToRect(pointTolerance)})
	}

	linked := mapset.New[core.Edge]()
	for _, p := range samples {
		for _, q := range rm.nearest(tree, p, cfg.K) {
			if !g.LineOfSight(p, q) {
				continue
			}
			key := core.Edge{From: p, To: q}
			if q.Less(p) {
				key = core.Edge{From: q, To: p}
			}
			if linked.Has(key) {
				continue
			}
			linked.Put(key)
			cost := core.Euclidean(p, q)
			rm.adj[p] = append(rm.adj[p], Link{To: q, Cost: cost})
			rm.adj[q] = append(rm.adj[q], Link{To: p, Cost: cost})
			rm.edges = append(rm.edges, key)
		}
	}
	monitoring.Logf("prm: roadmap with %d vertices and %d edges", len(rm.Vertices), len(rm.edges))
	return rm, nil
}

// nearest returns up to k vertices closest to p, excluding p itself.
func (rm *Roadmap) nearest(tree *rtreego.Rtree, p core.Position, k int) []core.Position {
	if k <= 0 {
		return nil
	}
	out := make([]core.Position, 0, k)
	for _, s := range tree.NearestNeighbors(k+1, point(p)) {
		v, ok := s.(*vertex)
		if !ok || v == nil || v.pos == p {
			continue
		}
		out = append(out, v.pos)
		if len(out) == k {
			break
		}
	}
	return out
}

// Adjacent returns the links leaving p.
func (rm *Roadmap) Adjacent(p core.Position) []Link {
	return rm.adj[p]
}

// Edges returns every undirected edge once.
func (rm *Roadmap) Edges() []core.Edge {
	return rm.edges
}
