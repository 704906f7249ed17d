package strategy

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrOutOfRange = errors.New("argument out of range")
)

// outOfRangeError returns an out of range error for the named argument,
// which unwraps to ErrOutOfRange.
func outOfRangeError(name string, value int, expected string) error {
	return fmt.Errorf("%w: %s %d, expected %s", ErrOutOfRange, name, value, expected)
}
