package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Fill    float64
	Brush   int
	Rock    bool
	Scene   string
	Panel   int
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:   "sand",
		Scale: 8,
		TPS:   60,
		Seed:  42,
		Width: 96, Height: 72,
		Brush: 2,
		Rock:  true,
		Panel: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "probability of a random grain per upper-half cell on reset")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in cells")
	fs.BoolVar(&c.Rock, "rock", c.Rock, "allow painting rock")
	fs.StringVar(&c.Scene, "scene", c.Scene, "YAML scene to load at startup")
	fs.IntVar(&c.Panel, "hud", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
}

// SimOptions converts the config into the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    itoa(c.Width),
		"h":    itoa(c.Height),
		"seed": itoa64(c.Seed),
		"fill": ftoa(c.Fill),
		"rock": btoa(c.Rock),
	}
}
