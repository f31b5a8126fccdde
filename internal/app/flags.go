package app

import (
	"flag"

	"pathviz/internal/driver"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Scale    int
	TPS      int
	Seed     int64
	Algo     string
	Steps    int
	WallProb float64
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := driver.DefaultConfig()
	return &Config{
		Rows:     d.Rows,
		Cols:     d.Cols,
		Scale:    24,
		TPS:      60,
		Seed:     d.Seed,
		Algo:     d.Algorithm,
		Steps:    d.StepsPerFrame,
		WallProb: d.WallProb,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "search ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for map generation and sampling")
	fs.StringVar(&c.Algo, "algo", c.Algo, "initial algorithm (bfs, dfs, dijkstra, greedy, astar, rrt, prm)")
	fs.IntVar(&c.Steps, "steps", c.Steps, "engine advances per tick")
	fs.Float64Var(&c.WallProb, "wall-prob", c.WallProb, "wall probability for generated maps")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
}

// Session converts the flags into a driver configuration.
func (c *Config) Session() driver.Config {
	d := driver.DefaultConfig()
	d.Rows = c.Rows
	d.Cols = c.Cols
	d.Seed = c.Seed
	d.Algorithm = c.Algo
	d.StepsPerFrame = c.Steps
	d.WallProb = c.WallProb
	return d
}
