package life

import (
	"errors"
	"testing"

	"cellab/pkg/rules"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5, rules.Conway)
	cells := life.Cells()
	for i := range cells {
		cells[i] = 0
	}

	w := life.Size().W
	set := func(x, y int) { life.Cells()[y*w+x] = 1 }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	cells = life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			idx := y*w + x
			alive := cells[idx] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestNewFromConfigCompilesRule(t *testing.T) {
	l, err := NewFromConfig(Config{Width: 8, Height: 8, Rule: "B36/S23", Density: 0.5})
	if err != nil {
		t.Fatalf("valid notation rejected: %v", err)
	}
	if got := l.Size(); got.W != 8 || got.H != 8 {
		t.Fatalf("unexpected size %+v", got)
	}
}

func TestNewFromConfigRejectsBadRule(t *testing.T) {
	_, err := NewFromConfig(Config{Width: 8, Height: 8, Rule: "B3S23"})
	if !errors.Is(err, rules.ErrRuleFormat) {
		t.Fatalf("expected ErrRuleFormat, got %v", err)
	}
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 16, rules.Conway)
	b := New(16, 16, rules.Conway)
	a.Reset(77)
	b.Reset(77)

	ac, bc := a.Cells(), b.Cells()
	for i := range ac {
		if ac[i] != bc[i] {
			t.Fatalf("cell %d differs after identical seeds", i)
		}
	}
}
