package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width  int
	Height int

	// Per-sim knobs; negative or empty values mean "use the sim default".
	Rule      string
	Code      int
	Density   float64
	Ignition  float64
	Threshold int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "life",
		Scale:     3,
		TPS:       60,
		Seed:      42,
		Width:     256,
		Height:    256,
		Code:      -1,
		Density:   -1,
		Ignition:  -1,
		Threshold: -1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, elementary, forest, crystal)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival notation for the life sim, e.g. B36/S23")
	fs.IntVar(&c.Code, "code", c.Code, "Wolfram code for the elementary sim (0-255)")
	fs.Float64Var(&c.Density, "density", c.Density, "initial fill density for life/forest")
	fs.Float64Var(&c.Ignition, "ignition", c.Ignition, "tree ignition probability for the forest sim")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "neighbor threshold for the crystal sim")
}

// SimOptions flattens the per-sim knobs into the string map consumed by
// the sim factories. Unset knobs are omitted so sims keep their defaults.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Rule != "" {
		opts["rule"] = c.Rule
	}
	if c.Code >= 0 {
		opts["code"] = strconv.Itoa(c.Code)
	}
	if c.Density >= 0 {
		opts["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	if c.Ignition >= 0 {
		opts["ignition"] = strconv.FormatFloat(c.Ignition, 'f', -1, 64)
	}
	if c.Threshold >= 0 {
		opts["threshold"] = strconv.Itoa(c.Threshold)
	}
	return opts
}
