package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Shuffle randomizes the order of ps in place.
func (r *RNG) Shuffle(ps []Position) {
	r.r.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
}

// Sample returns up to n distinct elements of ps chosen uniformly without
// replacement. ps is not modified.
func (r *RNG) Sample(ps []Position, n int) []Position {
	if n > len(ps) {
		n = len(ps)
	}
	pool := append([]Position(nil), ps...)
	for i := 0; i < n; i++ {
		j := i + r.r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// FreeCell draws uniformly random cells until it finds one that is not a
// wall. ok is false when the grid has no free cell.
func (r *RNG) FreeCell(g *Grid) (p Position, ok bool) {
	if g.Count(Wall) == g.Rows*g.Cols {
		return Position{}, false
	}
	for {
		p = Position{Row: r.r.IntN(g.Rows), Col: r.r.IntN(g.Cols)}
		if g.At(p) != Wall {
			return p, true
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
