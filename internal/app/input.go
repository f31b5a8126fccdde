package app

import "pathviz/internal/core"

// CellAt maps a cursor position to the grid cell under it. The board starts
// offsetY pixels below the top of the window. ok is false over the status
// bar or outside the board.
func CellAt(x, y, scale, offsetY int, g *core.Grid) (core.Position, bool) {
	if scale <= 0 || y < offsetY || x < 0 {
		return core.Position{}, false
	}
	p := core.Position{Row: (y - offsetY) / scale, Col: x / scale}
	return p, g.InBounds(p)
}
