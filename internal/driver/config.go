package driver

import "pathviz/internal/mapgen"

// Config holds the session settings. Zero sizes and counts fall back to
// DefaultConfig; a zero WallProb generates an empty board.
type Config struct {
	Rows, Cols    int
	Seed          int64
	Algorithm     string
	StepsPerFrame int
	WallProb      float64

	PRMSamples  int
	PRMK        int
	RRTMaxIters int
}

// DefaultConfig returns the standard 25x40 board running A*.
func DefaultConfig() Config {
	return Config{
		Rows:          25,
		Cols:          40,
		Seed:          1,
		Algorithm:     "astar",
		StepsPerFrame: 5,
		WallProb:      mapgen.DefaultWallProb,
		PRMSamples:    200,
		PRMK:          10,
		RRTMaxIters:   4000,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	if c.Cols <= 0 {
		c.Cols = def.Cols
	}
	if c.Algorithm == "" {
		c.Algorithm = def.Algorithm
	}
	if c.StepsPerFrame <= 0 {
		c.StepsPerFrame = def.StepsPerFrame
	}
	if c.WallProb < 0 || c.WallProb >= 1 {
		c.WallProb = def.WallProb
	}
	if c.PRMSamples <= 0 {
		c.PRMSamples = def.PRMSamples
	}
	if c.PRMK <= 0 {
		c.PRMK = def.PRMK
	}
	if c.RRTMaxIters <= 0 {
		c.RRTMaxIters = def.RRTMaxIters
	}
	return c
}
