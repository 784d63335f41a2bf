// Package forest runs the stochastic forest-fire automaton: trees ignite
// from burning neighbors with a configurable probability, burn for one
// step and leave scorched ground behind.
package forest

import (
	"strconv"

	"cellab/pkg/core"
	"cellab/pkg/grid"
	"cellab/pkg/rules"
)

// Params holds the tunable probabilities for the forest sim.
type Params struct {
	TreeDensity float64
	Ignition    float64

	// Ignition point forced to Burning on reset. Negative coordinates
	// start the run without a fire.
	BurnRow int
	BurnCol int
}

// Config controls the forest simulation dimensions and parameters.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Params Params
}

// DefaultConfig returns the standard configuration: a dense forest with a
// fire started at the grid center.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			TreeDensity: 0.6,
			Ignition:    rules.DefaultIgnition,
			BurnRow:     128,
			BurnCol:     128,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
			c.Params.BurnCol = parsed / 2
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
			c.Params.BurnRow = parsed / 2
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.TreeDensity = parsed
		}
	}
	if v, ok := cfg["ignition"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Ignition = parsed
		}
	}
	if v, ok := cfg["burn_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.BurnRow = parsed
		}
	}
	if v, ok := cfg["burn_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.BurnCol = parsed
		}
	}
	return c
}

// World steps a forest grid under the fire-spread rule.
type World struct {
	cfg  Config
	w, h int
	cur  grid.Grid
	rule rules.Rule2D
	rng  *core.RNG
}

// New returns a forest world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Params.BurnRow = h / 2
	cfg.Params.BurnCol = w / 2
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest world configured from the provided
// options.
func NewWithConfig(cfg Config) *World {
	return &World{cfg: cfg, w: cfg.Width, h: cfg.Height}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current grid values.
func (w *World) Cells() []grid.Cell { return w.cur.Cells() }

// Grid exposes the current generation.
func (w *World) Grid() grid.Grid { return w.cur }

// Reset replants the forest deterministically from the seed and rebinds
// the fire rule to a generator with the same seed, so identical seeds
// replay identical burns.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.rng = core.NewRNG(seed)
	w.rule = rules.ForestFire(w.cfg.Params.Ignition, w.rng)
	p := w.cfg.Params
	w.cur = grid.New(w.h, w.w, grid.Forest(p.TreeDensity, w.rng, p.BurnRow, p.BurnCol))
}

// Step advances the fire by one generation.
func (w *World) Step() {
	w.cur = grid.Next(w.cur, w.rule)
}

func init() {
	core.Register("forest", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg)), nil
	})
}
