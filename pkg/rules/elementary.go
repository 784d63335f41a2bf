package rules

import (
	"fmt"

	"cellab/pkg/grid"
)

// Elementary returns the 1D rule for the given Wolfram code. The code's
// 8-bit binary expansion is the rule's truth table: neighborhood
// (left, center, right) selects bit left*4+center*2+right, so pattern
// 111 reads the most significant bit and 000 the least.
func Elementary(code int) (Rule1D, error) {
	if code < 0 || code > 255 {
		return nil, fmt.Errorf("%w: %d", ErrCodeRange, code)
	}
	table := uint8(code)
	return func(left, center, right grid.Cell) grid.Cell {
		idx := left<<2 | center<<1 | right
		return grid.Cell((table >> idx) & 1)
	}, nil
}

func mustElementary(code int) Rule1D {
	r, err := Elementary(code)
	if err != nil {
		panic(err)
	}
	return r
}

// The well-known named elementary rules.
var (
	// Rule30 is chaotic; its center column passes randomness tests.
	Rule30 = mustElementary(30)
	// Rule90 draws the Sierpinski triangle from a single cell.
	Rule90 = mustElementary(90)
	// Rule110 is Turing complete.
	Rule110 = mustElementary(110)
	// Rule184 models single-lane traffic flow.
	Rule184 = mustElementary(184)
)
