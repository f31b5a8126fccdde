package core

import (
	"errors"
	"fmt"
	"sort"
)

// Signal is the outcome of a single Advance call.
type Signal uint8

const (
	// Step reports that a unit of work was performed and the run continues.
	Step Signal = iota
	// Done reports that the goal was reached and the path has been painted.
	Done
	// Fail reports that the search space or iteration budget ran out.
	Fail
)

func (s Signal) String() string {
	switch s {
	case Step:
		return "step"
	case Done:
		return "done"
	case Fail:
		return "fail"
	}
	return fmt.Sprintf("signal(%d)", uint8(s))
}

// Terminal reports whether s ends a run.
func (s Signal) Terminal() bool { return s == Done || s == Fail }

// Engine is a resumable search over a Grid. Each Advance performs one unit
// of work and mutates only Open, Closed and Path cells. Once a terminal
// signal has been returned, later calls return it again without touching
// the grid.
type Engine interface {
	Name() string
	Advance() Signal
}

// Edge is a straight connection between two positions, exposed by engines
// that build geometric structures so the UI can draw them.
type Edge struct {
	From, To Position
}

// EdgeProvider is implemented by engines that can report the edges of their
// roadmap or tree.
type EdgeProvider interface {
	Edges() []Edge
}

// PathProvider is implemented by engines that can report the path they
// found, from start to goal inclusive. Path is nil until Done.
type PathProvider interface {
	Path() []Position
}

// PathLength sums the Euclidean lengths of consecutive path segments. For
// 4-connected grid paths this equals the edge count.
func PathLength(path []Position) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += Euclidean(path[i-1], path[i])
	}
	return total
}

// Sentinel errors returned by engine construction.
var (
	ErrNilGrid       = errors.New("core: grid is nil")
	ErrOutOfBounds   = errors.New("core: endpoint outside the grid")
	ErrEndpointWall  = errors.New("core: endpoint is a wall")
	ErrSameEndpoints = errors.New("core: start and goal are the same cell")
	ErrUnknownEngine = errors.New("core: unknown engine")
)

// ValidateEndpoints checks the preconditions every engine shares.
func ValidateEndpoints(g *Grid, start, goal Position) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, p := range []Position{start, goal} {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Rows, g.Cols)
		}
		if g.At(p) == Wall {
			return fmt.Errorf("%w: %v", ErrEndpointWall, p)
		}
	}
	if start == goal {
		return fmt.Errorf("%w: %v", ErrSameEndpoints, start)
	}
	return nil
}

// Factory constructs an Engine for one run. cfg carries optional
// engine-specific tunables in key/value form.
type Factory func(g *Grid, start, goal Position, rng *RNG, cfg map[string]string) (Engine, error)

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEngine looks up name in the registry and constructs an engine.
func NewEngine(name string, g *Grid, start, goal Position, rng *RNG, cfg map[string]string) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return f(g, start, goal, rng, cfg)
}

// Drain advances e until it returns a terminal signal or limit advances have
// been made (limit <= 0 means no limit). It returns the last signal and the
// number of advances performed.
func Drain(e Engine, limit int) (Signal, int) {
	n := 0
	for {
		s := e.Advance()
		n++
		if s.Terminal() || (limit > 0 && n >= limit) {
			return s, n
		}
	}
}
