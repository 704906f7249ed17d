package interop

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrUnsupported = errors.New("recurrence not expressible")
)

// unsupportedError returns an unsupported recurrence error with a custom
// error message, which unwraps to ErrUnsupported.
func unsupportedError(message string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, message)
}
