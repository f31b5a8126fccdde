//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"pathviz/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws roadmap or tree edges on top of the board. E toggles it.
type Overlay struct {
	source  core.EdgeProvider
	scale   int
	offsetY int
	show    bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay for a board drawn at the given scale and
// vertical offset.
func NewOverlay(source core.EdgeProvider, scale, offsetY int) *Overlay {
	o := &Overlay{source: source, scale: max(scale, 1), offsetY: offsetY, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.show = !o.show
	}
}

// Draw renders every edge as a thin line between cell centers with a dot on
// each endpoint.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.source == nil {
		return
	}
	edges := o.source.Edges()
	if len(edges) == 0 {
		return
	}
	thickness := math.Max(1, float64(o.scale)/8)
	dot := math.Max(2, float64(o.scale)/4)
	lineColor := color.RGBA{R: 40, G: 40, B: 160, A: 150}
	dotColor := color.RGBA{R: 20, G: 20, B: 90, A: 200}
	for _, e := range edges {
		x1, y1 := o.center(e.From)
		x2, y2 := o.center(e.To)
		o.drawLine(screen, x1, y1, x2, y2, thickness, lineColor)
	}
	for _, e := range edges {
		x, y := o.center(e.To)
		o.drawPoint(screen, x, y, dot, dotColor)
	}
}

func (o *Overlay) center(p core.Position) (float64, float64) {
	s := float64(o.scale)
	return (float64(p.Col) + 0.5) * s, float64(o.offsetY) + (float64(p.Row)+0.5)*s
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
