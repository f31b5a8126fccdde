package render

import (
	"image/color"

	"pathviz/internal/core"
)

// Theme holds the colors used to draw the board.
type Theme struct {
	Cells      [core.NumCells]color.RGBA
	Background color.RGBA
	GridLine   color.RGBA
	Text       color.RGBA
}

// DefaultTheme returns the red, teal and yellow board theme.
func DefaultTheme() Theme {
	var t Theme
	t.Cells[core.Empty] = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	t.Cells[core.Wall] = color.RGBA{R: 28, G: 28, B: 28, A: 255}
	t.Cells[core.Start] = color.RGBA{R: 0, G: 210, B: 190, A: 255}
	t.Cells[core.Goal] = color.RGBA{R: 45, G: 0, B: 225, A: 255}
	t.Cells[core.Open] = color.RGBA{R: 231, G: 19, B: 19, A: 255}
	t.Cells[core.Closed] = color.RGBA{R: 106, G: 207, B: 113, A: 255}
	t.Cells[core.Path] = color.RGBA{R: 255, G: 238, B: 0, A: 255}
	t.Background = color.RGBA{R: 106, G: 104, B: 104, A: 255}
	t.GridLine = color.RGBA{R: 239, G: 11, B: 11, A: 255}
	t.Text = color.RGBA{A: 255}
	return t
}

// Palette returns the cell colors indexed by core.Cell.
func (t Theme) Palette() []color.RGBA {
	return t.Cells[:]
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values
// past the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
