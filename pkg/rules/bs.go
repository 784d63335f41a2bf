package rules

import (
	"fmt"
	"regexp"
)

// bsPattern accepts B<digits>/S<digits>, case-insensitive, where each
// digit is a live-neighbor count in 0-8. Zero digits on either side is
// legal (Seeds is "B2/S").
var bsPattern = regexp.MustCompile(`^[Bb]([0-8]*)/[Ss]([0-8]*)$`)

// ParseBS compiles birth/survival notation such as "B3/S23" into a rule.
// It returns ErrRuleFormat for anything outside the grammar; it never
// falls back to a default rule.
func ParseBS(text string) (Rule2D, error) {
	m := bsPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrRuleFormat, text)
	}
	birth, err := parseCounts(m[1])
	if err != nil {
		return nil, err
	}
	survival, err := parseCounts(m[2])
	if err != nil {
		return nil, err
	}
	return BS(birth, survival), nil
}

// parseCounts converts a run of digit characters into neighbor counts.
// The digit check cannot fire on input that passed bsPattern; it guards
// direct callers.
func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, r := range digits {
		if r < '0' || r > '8' {
			return nil, fmt.Errorf("%w: %q", ErrRuleDigit, r)
		}
		counts = append(counts, int(r-'0'))
	}
	return counts, nil
}
