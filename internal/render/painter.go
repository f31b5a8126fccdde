//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads cell data into a texture and draws it scaled up with
// optional cell borders.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a w x h grid.
func NewGridPainter(w, h int) *GridPainter {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &GridPainter{
		w:     w,
		h:     h,
		img:   ebiten.NewImage(w, h),
		buf:   make([]byte, 4*w*h),
		pixel: pixel,
	}
}

// Blit draws cells at offset (0, offsetY) with each cell scale pixels wide.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, theme Theme, scale, offsetY int) {
	if scale <= 0 {
		scale = 1
	}
	fillPaletteRGBA(p.buf, cells, theme.Palette())
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(p.img, op)

	if scale >= 4 {
		p.drawLines(screen, theme.GridLine, scale, offsetY)
	}
}

func (p *GridPainter) drawLines(screen *ebiten.Image, col color.RGBA, scale, offsetY int) {
	width := float64(p.w * scale)
	height := float64(p.h * scale)
	for x := 0; x <= p.w; x++ {
		p.rect(screen, float64(x*scale), float64(offsetY), 1, height, col)
	}
	for y := 0; y <= p.h; y++ {
		p.rect(screen, 0, float64(offsetY+y*scale), width, 1, col)
	}
}

func (p *GridPainter) rect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(p.pixel, op)
}
