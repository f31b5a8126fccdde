//go:build ebiten

package app

import (
	"pathviz/internal/core"
	"pathviz/internal/driver"
	"pathviz/internal/render"
	"pathviz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTicksPerFrame bounds catch-up after a stalled frame.
const maxTicksPerFrame = 4

var algorithmKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
}

// Game adapts a driver session to the ebiten.Game interface.
type Game struct {
	session *driver.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	status  ui.StatusBar
	theme   render.Theme
	clock   *core.FixedStep

	scale    int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(session *driver.Session, cfg *Config) *Game {
	g := session.Grid()
	theme := render.DefaultTheme()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(g.Cols, g.Rows),
		overlay:  ui.NewOverlay(session, cfg.Scale, ui.StatusHeight),
		hud:      ui.NewHUD(session, "Pathfinding Controls", cfg.HUDWidth),
		status:   ui.StatusBar{Background: theme.Background, Text: theme.Text},
		theme:    theme,
		clock:    core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Update handles input and advances the active search.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// Failures are reported through the status line.
		_ = s.Run()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.NewMap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.ClearPath()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		s.StepOnce()
	}
	for i, key := range algorithmKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.Select(i)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if p, ok := CellAt(x, y, g.scale, ui.StatusHeight, s.Grid()); ok {
			s.Click(p)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.boardWidth())

	for n := g.clock.Due(maxTicksPerFrame); n > 0; n-- {
		s.Tick()
	}
	return nil
}

// Draw renders the status bar, board, overlay and parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.theme.Background)
	s := g.session
	g.status.Draw(screen, g.boardWidth(),
		"Pathfinding Visualizer",
		ui.AlgorithmLine(s.Selected()),
		s.Status(),
		ui.StatsLine(s.Stats()),
	)
	g.painter.Blit(screen, s.Grid().Cells(), g.theme, g.scale, ui.StatusHeight)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.boardWidth(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.session.Grid()
	return g.boardWidth() + g.hudWidth, ui.StatusHeight + grid.Rows*g.scale
}

func (g *Game) boardWidth() int {
	return g.session.Grid().Cols * g.scale
}
