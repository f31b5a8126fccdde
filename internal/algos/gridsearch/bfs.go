package gridsearch

import (
	"pathviz/internal/core"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// BFS explores in FIFO order. Each position is enqueued at most once, so the
// path it finds is shortest by edge count.
type BFS struct {
	run
	queue   *queue.Queue[core.Position]
	visited mapset.Set[core.Position]
}

// NewBFS prepares a breadth-first search from start to goal on g.
func NewBFS(g *core.Grid, start, goal core.Position) (*BFS, error) {
	r, err := newRun("bfs", g, start, goal)
	if err != nil {
		return nil, err
	}
	b := &BFS{run: r, queue: queue.New[core.Position](), visited: mapset.New[core.Position]()}
	b.queue.Enqueue(start)
	b.visited.Put(start)
	return b, nil
}

// Name returns the engine identifier.
func (b *BFS) Name() string { return "bfs" }

// Advance dequeues one position and enqueues its unseen neighbors.
func (b *BFS) Advance() core.Signal {
	if b.finished {
		return b.result
	}
	if b.queue.Empty() {
		return b.finish(core.Fail)
	}
	cur := b.queue.Dequeue()
	b.close(cur)
	if cur == b.goal {
		return b.reachGoal()
	}
	for _, nb := range b.grid.Neighbors(cur) {
		if b.visited.Has(nb) {
			continue
		}
		b.visited.Put(nb)
		b.cameFrom[nb] = cur
		b.queue.Enqueue(nb)
		b.open(nb)
	}
	return core.Step
}
