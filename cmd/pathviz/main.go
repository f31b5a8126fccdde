//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"pathviz/internal/app"
	"pathviz/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session := driver.New(cfg.Session())
	if session.Selected().Key != cfg.Algo {
		log.Fatalf("unknown algorithm %q", cfg.Algo)
	}

	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("pathviz — " + session.Selected().Label)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
