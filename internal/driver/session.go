// Package driver models the interactive loop around the search engines:
// placing endpoints and walls, picking an algorithm, pacing a run and
// reporting its outcome.
package driver

import (
	"errors"
	"fmt"
	"strconv"

	"pathviz/internal/core"
	"pathviz/internal/mapgen"
	"pathviz/internal/monitoring"

	_ "pathviz/internal/algos/gridsearch"
	_ "pathviz/internal/algos/prm"
	_ "pathviz/internal/algos/rrt"
)

var (
	// ErrBusy is returned when a run is requested while another is active.
	ErrBusy = errors.New("driver: a search is already running")
	// ErrNoEndpoints is returned when a run is requested before start and
	// goal are placed.
	ErrNoEndpoints = errors.New("driver: start and goal must be set")
)

// Algorithm pairs a registered engine name with its display label.
type Algorithm struct {
	Key   string
	Label string
}

// Algorithms lists the selectable engines in keyboard order.
var Algorithms = []Algorithm{
	{Key: "bfs", Label: "BFS"},
	{Key: "dfs", Label: "DFS"},
	{Key: "dijkstra", Label: "Dijkstra"},
	{Key: "greedy", Label: "Greedy"},
	{Key: "astar", Label: "A*"},
	{Key: "rrt", Label: "RRT"},
	{Key: "prm", Label: "PRM"},
}

const (
	msgWelcome    = "Left-click: set START, then GOAL, then walls. SPACE to run."
	msgNewMap     = "New map. Left-click: START, then GOAL, then walls. SPACE to run."
	msgStartSet   = "Start set. Now click to set GOAL."
	msgGoalOnSt   = "Goal can't be on START. Click another cell."
	msgGoalSet    = "Goal set. Click to toggle walls or press SPACE."
	msgCleared    = "Path cleared. You can run another algorithm."
	msgNeedEnds   = "Set START and GOAL first."
	msgBusy       = "A search is already running."
	msgNoPath     = "No path found."
	msgEngineFail = "Could not start %s: %v"
)

// Stats summarizes the current or most recent run.
type Stats struct {
	Advances int
	Open     int
	Closed   int
	Path     int
	Length   float64
	Outcome  core.Signal
	Finished bool
}

// Session owns the grid and at most one active engine.
type Session struct {
	cfg  Config
	grid *core.Grid
	rng  *core.RNG

	start, goal       core.Position
	hasStart, hasGoal bool

	selected int
	engine   core.Engine
	running  bool
	paused   bool
	advances int
	outcome  core.Signal
	finished bool

	status string
}

// New builds a session and generates its first map.
func New(cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		cfg:  cfg,
		grid: core.NewGrid(cfg.Rows, cfg.Cols),
		rng:  core.NewRNG(cfg.Seed),
	}
	if !s.SelectName(cfg.Algorithm) {
		s.selected = 4
	}
	s.NewMap()
	s.status = msgWelcome
	return s
}

// Name identifies the session on the HUD.
func (s *Session) Name() string { return "pathviz" }

// Grid exposes the session grid for rendering.
func (s *Session) Grid() *core.Grid { return s.grid }

// Status returns the current status line.
func (s *Session) Status() string { return s.status }

// Running reports whether an engine is active.
func (s *Session) Running() bool { return s.running }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes Tick.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Start returns the start position when set.
func (s *Session) Start() (core.Position, bool) { return s.start, s.hasStart }

// Goal returns the goal position when set.
func (s *Session) Goal() (core.Position, bool) { return s.goal, s.hasGoal }

// Selected returns the chosen algorithm.
func (s *Session) Selected() Algorithm { return Algorithms[s.selected] }

// Engine returns the active or most recent engine, or nil.
func (s *Session) Engine() core.Engine { return s.engine }

// Edges returns the roadmap or tree edges of the current engine, if any.
func (s *Session) Edges() []core.Edge {
	if ep, ok := s.engine.(core.EdgeProvider); ok {
		return ep.Edges()
	}
	return nil
}

// Select picks the algorithm at index i. It is ignored while running.
func (s *Session) Select(i int) bool {
	if s.running || i < 0 || i >= len(Algorithms) {
		return false
	}
	s.selected = i
	s.status = fmt.Sprintf("Selected %s. SPACE to run.", Algorithms[i].Label)
	return true
}

// SelectName picks the algorithm registered under key.
func (s *Session) SelectName(key string) bool {
	for i, a := range Algorithms {
		if a.Key == key {
			return s.Select(i)
		}
	}
	return false
}

// Click applies a left click on cell p: the first click places the start,
// the second the goal, and later clicks toggle walls. Clicks are ignored
// while a search runs. It reports whether the grid changed.
func (s *Session) Click(p core.Position) bool {
	if s.running || !s.grid.InBounds(p) {
		return false
	}
	cell := s.grid.At(p)
	switch {
	case !s.hasStart:
		s.start, s.hasStart = p, true
		s.grid.Set(p, core.Start)
		s.status = msgStartSet
		return true
	case !s.hasGoal:
		if p == s.start {
			s.status = msgGoalOnSt
			return false
		}
		s.goal, s.hasGoal = p, true
		s.grid.Set(p, core.Goal)
		s.status = msgGoalSet
		return true
	}
	if p == s.start || p == s.goal {
		return false
	}
	if cell == core.Wall {
		s.grid.Set(p, core.Empty)
	} else {
		s.grid.Set(p, core.Wall)
	}
	return true
}

// Run clears old markers and starts the selected engine.
func (s *Session) Run() error {
	if s.running {
		s.status = msgBusy
		return ErrBusy
	}
	if !s.hasStart || !s.hasGoal {
		s.status = msgNeedEnds
		return ErrNoEndpoints
	}
	s.resetMarkers()
	algo := Algorithms[s.selected]
	e, err := core.NewEngine(algo.Key, s.grid, s.start, s.goal, s.rng, s.engineConfig())
	if err != nil {
		s.status = fmt.Sprintf(msgEngineFail, algo.Label, err)
		return fmt.Errorf("driver: run %s: %w", algo.Key, err)
	}
	s.engine = e
	s.running = true
	s.paused = false
	s.advances = 0
	s.finished = false
	s.status = fmt.Sprintf("Running %s ...", algo.Label)
	monitoring.Logf("driver: running %s from %v to %v", algo.Key, s.start, s.goal)
	return nil
}

// Tick advances the active engine up to StepsPerFrame times, stopping early
// on a terminal signal. It returns the last signal produced, or Step when
// nothing ran.
func (s *Session) Tick() core.Signal {
	if !s.running || s.paused {
		return core.Step
	}
	return s.advance(s.cfg.StepsPerFrame)
}

// StepOnce advances the active engine a single time, even when paused.
func (s *Session) StepOnce() core.Signal {
	if !s.running {
		return core.Step
	}
	return s.advance(1)
}

func (s *Session) advance(n int) core.Signal {
	sig := core.Step
	for i := 0; i < n; i++ {
		sig = s.engine.Advance()
		s.advances++
		if sig.Terminal() {
			s.complete(sig)
			break
		}
	}
	return sig
}

func (s *Session) complete(sig core.Signal) {
	s.running = false
	s.finished = true
	s.outcome = sig
	label := Algorithms[s.selected].Label
	if sig == core.Done {
		s.status = fmt.Sprintf("Path found with %s.", label)
	} else {
		s.status = msgNoPath
	}
	monitoring.Logf("driver: %s finished with %s after %d advances", s.engine.Name(), sig, s.advances)
}

// ClearPath abandons any run and removes exploration markers.
func (s *Session) ClearPath() {
	s.stop()
	s.resetMarkers()
	s.status = msgCleared
}

// NewMap abandons any run, forgets the endpoints and generates a fresh
// connected map.
func (s *Session) NewMap() {
	s.stop()
	s.engine = nil
	s.hasStart, s.hasGoal = false, false
	mapgen.Generate(s.grid, s.rng, s.cfg.WallProb)
	s.status = msgNewMap
}

func (s *Session) stop() {
	s.running = false
	s.paused = false
	s.finished = false
}

func (s *Session) resetMarkers() {
	s.grid.ResetSearch()
	if s.hasStart {
		s.grid.Set(s.start, core.Start)
	}
	if s.hasGoal {
		s.grid.Set(s.goal, core.Goal)
	}
}

func (s *Session) engineConfig() map[string]string {
	return map[string]string{
		"samples":   strconv.Itoa(s.cfg.PRMSamples),
		"k":         strconv.Itoa(s.cfg.PRMK),
		"max_iters": strconv.Itoa(s.cfg.RRTMaxIters),
	}
}

// Stats reports counters for the current or most recent run.
func (s *Session) Stats() Stats {
	st := Stats{
		Advances: s.advances,
		Open:     s.grid.Count(core.Open),
		Closed:   s.grid.Count(core.Closed),
		Path:     s.grid.Count(core.Path),
		Outcome:  s.outcome,
		Finished: s.finished,
	}
	if pp, ok := s.engine.(core.PathProvider); ok && s.finished && s.outcome == core.Done {
		st.Length = core.PathLength(pp.Path())
	}
	return st
}
