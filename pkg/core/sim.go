package core

import (
	"cellab/pkg/grid"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement
// for the driver loop: reseed, advance one generation, expose cells.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []grid.Cell
}

// Factory constructs a Sim from an optional string-map configuration.
// Invalid configuration (bad rule notation, out-of-range Wolfram code)
// surfaces here, at construction time, never during stepping.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
