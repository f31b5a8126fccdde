package core

// Cell enumerates the state of a single grid cell.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Start
	Goal
	Open
	Closed
	Path
)

// NumCells is the number of distinct Cell values, used to size palettes.
const NumCells = int(Path) + 1

var cellNames = [...]string{"empty", "wall", "start", "goal", "open", "closed", "path"}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

// Structural reports whether the cell is owned by the driver (walls and
// endpoints) rather than by a running engine.
func (c Cell) Structural() bool {
	return c == Wall || c == Start || c == Goal
}

// Marker reports whether the cell is a transient exploration marker.
func (c Cell) Marker() bool {
	return c == Open || c == Closed || c == Path
}

// Position is a (row, column) grid coordinate.
type Position struct {
	Row, Col int
}

// Less orders positions row first, then column.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// Grid stores a fixed-size 2D grid of cells in row-major order.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice for renderers.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for p.
func (g *Grid) Index(p Position) int { return p.Row*g.Cols + p.Col }

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the cell at p. Out of bounds positions read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return Cell(g.data[g.Index(p)])
}

// Set writes c at p. Out of bounds writes are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !g.InBounds(p) {
		return
	}
	g.data[g.Index(p)] = uint8(c)
}

// Passable reports whether p is inside the grid and not a wall.
func (g *Grid) Passable(p Position) bool {
	return g.InBounds(p) && g.At(p) != Wall
}

// Mark sets an exploration marker at p unless p holds a structural cell.
func (g *Grid) Mark(p Position, c Cell) {
	if g.At(p).Structural() {
		return
	}
	g.Set(p, c)
}

// Clear fills the grid with Empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = uint8(Empty)
	}
}

// ResetSearch turns every Open, Closed and Path cell back into Empty and
// leaves walls and endpoints untouched.
func (g *Grid) ResetSearch() {
	for i, v := range g.data {
		if Cell(v).Marker() {
			g.data[i] = uint8(Empty)
		}
	}
}

// Count returns how many cells currently hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if Cell(v) == c {
			n++
		}
	}
	return n
}

// Free returns every non-wall position in row-major order.
func (g *Grid) Free() []Position {
	free := make([]Position, 0, len(g.data))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if Cell(g.data[r*g.Cols+c]) != Wall {
				free = append(free, Position{Row: r, Col: c})
			}
		}
	}
	return free
}

// Snapshot returns a copy of the cell data.
func (g *Grid) Snapshot() []uint8 {
	return append([]uint8(nil), g.data...)
}
