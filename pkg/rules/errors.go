package rules

import "errors"

var (
	// ErrCodeRange is returned when an elementary rule code falls
	// outside [0, 255].
	ErrCodeRange = errors.New("rules: elementary rule code outside [0, 255]")

	// ErrRuleFormat is returned when a birth/survival string does not
	// match the B<digits>/S<digits> grammar.
	ErrRuleFormat = errors.New("rules: notation must match B<digits>/S<digits> with digits 0-8")

	// ErrRuleDigit is returned when a neighbor count character is not a
	// digit in 0-8. The grammar already excludes such input, so this
	// cannot surface through ParseBS; the check stays for direct callers
	// of the count parser.
	ErrRuleDigit = errors.New("rules: neighbor count must be a digit in 0-8")
)
