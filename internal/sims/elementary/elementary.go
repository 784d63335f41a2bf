// Package elementary projects a 1D Wolfram-code automaton vertically:
// the newest generation occupies the top row and history scrolls down.
package elementary

import (
	"strconv"

	"cellab/pkg/core"
	"cellab/pkg/grid"
	"cellab/pkg/rules"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Code   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Code: 110}
}

// FromMap populates a Config from a string map. The code is carried as-is
// so that out-of-range values fail in NewFromConfig rather than being
// silently replaced.
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
	if v, ok := cfg["code"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Code = parsed
		}
	}
	return c
}

// Auto is a one-dimensional automaton with a scrolling history buffer.
type Auto struct {
	w, h  int
	code  int
	rule  rules.Rule1D
	row   grid.Row
	cells []grid.Cell
}

// New creates an automaton with the given dimensions and rule code.
func New(w, h, code int) (*Auto, error) {
	rule, err := rules.Elementary(code)
	if err != nil {
		return nil, err
	}
	return &Auto{
		w:     w,
		h:     h,
		code:  code,
		rule:  rule,
		row:   grid.NewRow(w, nil),
		cells: make([]grid.Cell, w*h),
	}, nil
}

// NewFromConfig builds an automaton from a Config.
func NewFromConfig(c Config) (*Auto, error) {
	return New(c.Width, c.Height, c.Code)
}

// Name returns the simulation identifier.
func (a *Auto) Name() string { return "elementary" }

// Size returns the history buffer dimensions.
func (a *Auto) Size() core.Size { return core.Size{W: a.w, H: a.h} }

// Cells exposes the render buffer: one generation per row, newest first.
func (a *Auto) Cells() []grid.Cell { return a.cells }

// Row exposes the current generation.
func (a *Auto) Row() grid.Row { return a.row }

// Code returns the Wolfram code the automaton runs.
func (a *Auto) Code() int { return a.code }

// Reset clears the history and seeds a single active center cell.
func (a *Auto) Reset(seed int64) {
	for i := range a.cells {
		a.cells[i] = 0
	}
	a.row = grid.NewRow(a.w, grid.SingleCenter(a.w))
	copy(a.cells[:a.w], a.row)
}

// Step computes the next generation and scrolls history downwards.
func (a *Auto) Step() {
	if a.w == 0 || a.h == 0 {
		return
	}
	a.row = grid.NextRow(a.row, a.rule)
	copy(a.cells[a.w:], a.cells[:a.w*(a.h-1)])
	copy(a.cells[:a.w], a.row)
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		return NewFromConfig(FromMap(cfg))
	})
}
