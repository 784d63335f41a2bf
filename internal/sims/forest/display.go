package forest

import "image/color"

var forestPalette = []color.RGBA{
	{R: 46, G: 34, B: 24, A: 255},   // empty ground
	{R: 58, G: 135, B: 66, A: 255},  // tree
	{R: 255, G: 120, B: 32, A: 255}, // burning
	{R: 84, G: 78, B: 74, A: 255},   // burnt
}

// Palette exposes the color palette used for rendering the forest,
// indexed by cell state.
func (w *World) Palette() []color.RGBA {
	return forestPalette
}
