//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// StatusHeight is the height of the bar above the board.
const StatusHeight = 80

// StatusBar draws the title, algorithm line, status message and run stats.
type StatusBar struct {
	Background color.RGBA
	Text       color.RGBA
}

// Draw renders the bar across width pixels at the top of screen.
func (b StatusBar) Draw(screen *ebiten.Image, width int, lines ...string) {
	bar := screen.SubImage(image.Rect(0, 0, width, StatusHeight)).(*ebiten.Image)
	bar.Fill(b.Background)
	face := basicfont.Face7x13
	y := 18
	for _, line := range lines {
		text.Draw(screen, line, face, 16, y, b.Text)
		y += 18
	}
}
