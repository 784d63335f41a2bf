// Package crystal grows a crystal by deterministic accretion: an empty
// cell freezes once enough of its neighbors have crystallized.
package crystal

import (
	"image/color"
	"strconv"

	"cellab/pkg/core"
	"cellab/pkg/grid"
	"cellab/pkg/rules"
)

// Config controls the crystal simulation.
type Config struct {
	Width     int
	Height    int
	Threshold int
}

// DefaultConfig returns the standard configuration. The threshold of 1
// lets a lone seed spread; raise it toward rules.DefaultCrystalThreshold
// for growth that needs denser fronts.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Threshold: 1}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 8 {
			c.Threshold = parsed
		}
	}
	return c
}

// Crystal steps an accretion grid seeded at the center.
type Crystal struct {
	w, h int
	rule rules.Rule2D
	cur  grid.Grid
}

// New creates a crystal sim with the provided dimensions and neighbor
// threshold.
func New(w, h, threshold int) *Crystal {
	return &Crystal{w: w, h: h, rule: rules.CrystalGrowth(threshold)}
}

// Name identifies the simulation.
func (c *Crystal) Name() string { return "crystal" }

// Size returns the grid dimensions.
func (c *Crystal) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// Cells exposes the current state buffer.
func (c *Crystal) Cells() []grid.Cell { return c.cur.Cells() }

// Grid exposes the current generation.
func (c *Crystal) Grid() grid.Grid { return c.cur }

// Reset places a single seed at the grid center. The seed argument is
// ignored: growth is deterministic.
func (c *Crystal) Reset(seed int64) {
	c.cur = grid.New(c.h, c.w, grid.CrystalSeed(c.h, c.w))
}

// Step advances the accretion front by one generation.
func (c *Crystal) Step() {
	c.cur = grid.Next(c.cur, c.rule)
}

var crystalPalette = []color.RGBA{
	{R: 12, G: 16, B: 28, A: 255},    // empty
	{R: 170, G: 220, B: 255, A: 255}, // crystal
}

// Palette exposes the render palette, indexed by cell state.
func (c *Crystal) Palette() []color.RGBA {
	return crystalPalette
}

func init() {
	core.Register("crystal", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Threshold), nil
	})
}
