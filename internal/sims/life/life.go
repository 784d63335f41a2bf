// Package life runs binary birth/survival automata on a toroidal board.
// The default rule is Conway's Game of Life; any B/S notation accepted by
// rules.ParseBS can be substituted through the config map.
package life

import (
	"strconv"

	"cellab/pkg/core"
	"cellab/pkg/grid"
	"cellab/pkg/rules"
)

// Config holds the board dimensions and the rule notation.
type Config struct {
	Width   int
	Height  int
	Rule    string
	Density float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: "B3/S23", Density: 0.5}
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
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Life steps a binary board under a fixed birth/survival rule.
type Life struct {
	w, h     int
	rule     rules.Rule2D
	notation string
	density  float64
	cur      grid.Grid
}

// New returns a Life board with the provided dimensions and rule.
func New(w, h int, rule rules.Rule2D) *Life {
	return &Life{w: w, h: h, rule: rule, density: 0.5, cur: grid.New(h, w, nil)}
}

// NewFromConfig builds a board from a Config, compiling its rule notation.
func NewFromConfig(c Config) (*Life, error) {
	rule, err := rules.ParseBS(c.Rule)
	if err != nil {
		return nil, err
	}
	l := New(c.Width, c.Height, rule)
	l.notation = c.Rule
	l.density = c.Density
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current grid values.
func (l *Life) Cells() []grid.Cell { return l.cur.Cells() }

// Grid exposes the current generation.
func (l *Life) Grid() grid.Grid { return l.cur }

// Rule returns the B/S notation the board was built with, when known.
// Boards built directly from a rule function report an empty string.
func (l *Life) Rule() string { return l.notation }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	l.cur = grid.New(l.h, l.w, grid.Random(l.density, rng))
}

// Step advances the board by one generation.
func (l *Life) Step() {
	l.cur = grid.Next(l.cur, l.rule)
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewFromConfig(FromMap(cfg))
	})
}
