package pattern

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrPatternParse    = errors.New("parse recurrence pattern")
	ErrIllegalArgument = errors.New("illegal argument")
)

// patternParseError returns a pattern parse error with a custom error
// message, which unwraps to ErrPatternParse.
func patternParseError(expr, message string) error {
	return fmt.Errorf("%w %q: %s", ErrPatternParse, expr, message)
}

// wrapParseError returns err annotated with the pattern, which unwraps to
// both ErrPatternParse and err.
func wrapParseError(expr string, err error) error {
	return fmt.Errorf("%w %q: %w", ErrPatternParse, expr, err)
}

// illegalArgumentError returns an illegal argument error with a custom error
// message, which unwraps to ErrIllegalArgument.
func illegalArgumentError(message string) error {
	return fmt.Errorf("%w: %s", ErrIllegalArgument, message)
}
