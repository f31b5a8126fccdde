package rrt

import "strconv"

// Config holds the RRT tunables.
type Config struct {
	MaxIters int
}

// DefaultConfig returns the standard iteration budget.
func DefaultConfig() Config {
	return Config{MaxIters: 4000}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["max_iters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxIters = parsed
		}
	}
	return c
}
