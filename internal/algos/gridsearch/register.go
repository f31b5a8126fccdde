package gridsearch

import "pathviz/internal/core"

func init() {
	core.Register("bfs", func(g *core.Grid, start, goal core.Position, _ *core.RNG, _ map[string]string) (core.Engine, error) {
		return asEngine(NewBFS(g, start, goal))
	})
	core.Register("dfs", func(g *core.Grid, start, goal core.Position, _ *core.RNG, _ map[string]string) (core.Engine, error) {
		return asEngine(NewDFS(g, start, goal))
	})
	core.Register("dijkstra", func(g *core.Grid, start, goal core.Position, _ *core.RNG, _ map[string]string) (core.Engine, error) {
		return asEngine(NewDijkstra(g, start, goal))
	})
	core.Register("greedy", func(g *core.Grid, start, goal core.Position, _ *core.RNG, _ map[string]string) (core.Engine, error) {
		return asEngine(NewGreedy(g, start, goal))
	})
	core.Register("astar", func(g *core.Grid, start, goal core.Position, _ *core.RNG, _ map[string]string) (core.Engine, error) {
		return asEngine(NewAStar(g, start, goal))
	})
}

// asEngine keeps a failed constructor from leaking a typed nil into the
// Engine interface.
func asEngine[E core.Engine](e E, err error) (core.Engine, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
