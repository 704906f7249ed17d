package strategy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/reugn/go-darecali/internal/assert"
)

func TestOutOfRangeError(t *testing.T) {
	err := outOfRangeError("interval", 0, "at least 1")
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatal("error must match ErrOutOfRange")
	}
	assert.Equal(t, err.Error(), fmt.Sprintf("%s: interval 0, expected at least 1", ErrOutOfRange))
}

func TestConstructionErrorMessages(t *testing.T) {
	_, err := NewEveryNthWeek(128, 1)
	assert.Equal(t, err.Error(), "argument out of range: daysOfWeek 128, expected a value in [1, 127]")

	_, err = NewEveryNthWeek(1, 0)
	assert.Equal(t, err.Error(), "argument out of range: interval 0, expected at least 1")
}
