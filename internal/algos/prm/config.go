package prm

import "strconv"

// Config holds the roadmap tunables.
type Config struct {
	Samples int
	K       int
}

// DefaultConfig returns the standard sample count and neighbor fan-out.
func DefaultConfig() Config {
	return Config{Samples: 200, K: 10}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["samples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Samples = parsed
		}
	}
	if v, ok := cfg["k"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.K = parsed
		}
	}
	return c
}
