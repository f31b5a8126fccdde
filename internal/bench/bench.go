// Package bench runs every registered search engine over a batch of seeded
// maps and summarizes how much work each one did.
package bench

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"sync"
	"time"

	"pathviz/internal/core"
	"pathviz/internal/mapgen"
	"pathviz/internal/monitoring"

	_ "pathviz/internal/algos/gridsearch"
	_ "pathviz/internal/algos/prm"
	_ "pathviz/internal/algos/rrt"

	"gonum.org/v1/gonum/stat"
)

// Config controls a benchmark batch.
type Config struct {
	Maps       int
	Rows, Cols int
	Seed       int64
	WallProb   float64
	Workers    int
	Algorithms []string
	// Limit caps advances per run; zero means unbounded.
	Limit int
}

// DefaultConfig returns a batch of 20 maps on the standard board.
func DefaultConfig() Config {
	return Config{
		Maps:     20,
		Rows:     25,
		Cols:     40,
		Seed:     1,
		WallProb: mapgen.DefaultWallProb,
		Workers:  runtime.NumCPU(),
		Limit:    1_000_000,
	}
}

// Result records one engine run on one map.
type Result struct {
	Algorithm string
	Map       int
	Outcome   core.Signal
	Advances  int
	Closed    int
	Length    float64
	Elapsed   time.Duration
}

type job struct {
	index int
	seed  int64
}

// Run evaluates every configured algorithm on cfg.Maps maps. Results are
// ordered by map, then algorithm name.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Maps <= 0 {
		return nil, fmt.Errorf("bench: map count must be positive, got %d", cfg.Maps)
	}
	names := cfg.Algorithms
	if len(names) == 0 {
		names = core.EngineNames()
	}
	for _, n := range names {
		if _, ok := core.Engines()[n]; !ok {
			return nil, fmt.Errorf("bench: %w: %q", core.ErrUnknownEngine, n)
		}
	}
	workers := max(cfg.Workers, 1)

	jobs := make(chan job)
	results := make(chan []Result)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runMap(cfg, names, j)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Maps; i++ {
			select {
			case jobs <- job{index: i, seed: cfg.Seed + int64(i)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for batch := range results {
		all = append(all, batch...)
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Map != all[j].Map {
			return all[i].Map < all[j].Map
		}
		return all[i].Algorithm < all[j].Algorithm
	})
	return all, nil
}

// runMap generates one map, picks endpoints and runs every engine on a fresh
// copy of it with an RNG seeded from the map seed.
func runMap(cfg Config, names []string, j job) []Result {
	base := core.NewGrid(cfg.Rows, cfg.Cols)
	rng := core.NewRNG(j.seed)
	mapgen.Generate(base, rng, cfg.WallProb)
	start, ok := rng.FreeCell(base)
	if !ok {
		return nil
	}
	goal := start
	free := len(base.Free())
	for tries := 0; goal == start && free > 1 && tries < 1000; tries++ {
		goal, _ = rng.FreeCell(base)
	}
	if goal == start {
		return nil
	}
	params := map[string]string{"max_iters": strconv.Itoa(core.Manhattan(start, goal) * 200)}

	out := make([]Result, 0, len(names))
	for _, name := range names {
		g := core.NewGrid(base.Rows, base.Cols)
		copy(g.Cells(), base.Cells())
		g.Set(start, core.Start)
		g.Set(goal, core.Goal)

		e, err := core.NewEngine(name, g, start, goal, core.NewRNG(j.seed), params)
		if err != nil {
			monitoring.Logf("bench: map %d: %v", j.index, err)
			continue
		}
		began := time.Now()
		sig, n := core.Drain(e, cfg.Limit)
		r := Result{
			Algorithm: name,
			Map:       j.index,
			Outcome:   sig,
			Advances:  n,
			Closed:    g.Count(core.Closed),
			Elapsed:   time.Since(began),
		}
		if pp, ok := e.(core.PathProvider); ok && sig == core.Done {
			r.Length = core.PathLength(pp.Path())
		}
		out = append(out, r)
	}
	return out
}

// Summary aggregates the runs of one algorithm.
type Summary struct {
	Algorithm    string
	Runs         int
	Solved       int
	MeanAdvances float64
	StdAdvances  float64
	MeanClosed   float64
	MeanLength   float64
	MeanElapsed  time.Duration
}

// SuccessRate is the fraction of runs that reached the goal.
func (s Summary) SuccessRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Runs)
}

// Summarize groups results by algorithm. Path length statistics only cover
// solved runs. Summaries are sorted by algorithm name.
func Summarize(results []Result) []Summary {
	type series struct {
		advances, closed, length, elapsed []float64
		runs                              int
	}
	byAlgo := map[string]*series{}
	for _, r := range results {
		s := byAlgo[r.Algorithm]
		if s == nil {
			s = &series{}
			byAlgo[r.Algorithm] = s
		}
		s.runs++
		s.advances = append(s.advances, float64(r.Advances))
		s.closed = append(s.closed, float64(r.Closed))
		s.elapsed = append(s.elapsed, float64(r.Elapsed))
		if r.Outcome == core.Done {
			s.length = append(s.length, r.Length)
		}
	}

	out := make([]Summary, 0, len(byAlgo))
	for name, s := range byAlgo {
		sum := Summary{
			Algorithm:    name,
			Runs:         s.runs,
			Solved:       len(s.length),
			MeanAdvances: stat.Mean(s.advances, nil),
			MeanClosed:   stat.Mean(s.closed, nil),
			MeanElapsed:  time.Duration(stat.Mean(s.elapsed, nil)),
		}
		if len(s.advances) > 1 {
			sum.StdAdvances = stat.StdDev(s.advances, nil)
		}
		if len(s.length) > 0 {
			sum.MeanLength = stat.Mean(s.length, nil)
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Algorithm < out[j].Algorithm })
	return out
}
