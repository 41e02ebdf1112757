package sand

import "strconv"

// Config controls the sandbox dimensions and the optional random fill applied
// on Reset.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Fill is the per-cell probability of seeding a grain in the upper half
	// of the grid on Reset. Zero leaves the grid empty.
	Fill float64
	// Rock includes Rock among the materials used by the random fill.
	Rock bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 64,
		Seed:   42,
		Fill:   0,
		Rock:   true,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["rock"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rock = parsed
		}
	}
	return c
}
