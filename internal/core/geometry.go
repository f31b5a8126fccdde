package core

import "math"

// neighborOffsets lists the 4-connected moves in the order up, down, left,
// right. Grid searches inherit their tie-break order from it.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors returns the in-bounds, non-wall 4-neighbors of p.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Position) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(b.Row-a.Row), float64(b.Col-a.Col))
}

// SegmentCells rasterizes the segment a→b by sampling max(|dr|,|dc|)+1
// evenly spaced points and rounding each to the nearest cell (ties to
// even). The result starts at a and ends at b.
func SegmentCells(a, b Position) []Position {
	dr := b.Row - a.Row
	dc := b.Col - a.Col
	steps := max(absInt(dr), absInt(dc))
	if steps == 0 {
		return []Position{a}
	}
	cells := make([]Position, 0, steps+1)
	for i := 0; i <= steps; i++ {
		r := math.RoundToEven(float64(a.Row) + float64(dr*i)/float64(steps))
		c := math.RoundToEven(float64(a.Col) + float64(dc*i)/float64(steps))
		cells = append(cells, Position{Row: int(r), Col: int(c)})
	}
	return cells
}

// LineOfSight reports whether no sampled cell of the segment a→b is a wall.
// Cells outside the grid count as walls.
func (g *Grid) LineOfSight(a, b Position) bool {
	for _, p := range SegmentCells(a, b) {
		if !g.Passable(p) {
			return false
		}
	}
	return true
}

// ReconstructPath follows predecessor links from goal until it reaches a
// position with no predecessor (the root). The returned path runs from the
// first step after the root up to goal; the root itself is not included.
// It is empty when goal has no predecessor.
func ReconstructPath(cameFrom map[Position]Position, goal Position) []Position {
	var path []Position
	for cur := goal; ; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, cur)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PaintPath marks every position of path except start and goal as Path.
func (g *Grid) PaintPath(path []Position, start, goal Position) {
	for _, p := range path {
		if p == start || p == goal {
			continue
		}
		g.Mark(p, Path)
	}
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
