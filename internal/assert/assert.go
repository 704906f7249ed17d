package assert

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

const dateLayout = "2006-01-02 Mon"

// Equal fails the test if the values are not deeply equal.
func Equal[T any](t *testing.T, a T, b T) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("%v != %v", a, b)
	}
}

// NotEqual fails the test if the values are deeply equal.
func NotEqual[T any](t *testing.T, a T, b T) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Fatalf("%v == %v", a, b)
	}
}

// ErrorIs fails the test if err does not match target.
func ErrorIs(t *testing.T, err error, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

// Dates fails the test if the date sequences differ, reporting the first
// mismatching position.
func Dates(t *testing.T, actual []time.Time, expected []time.Time) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("length %d != %d", len(actual), len(expected))
	}
	for i := range expected {
		if !actual[i].Equal(expected[i]) {
			t.Fatalf("at %d: %s != %s", i,
				actual[i].Format(dateLayout), expected[i].Format(dateLayout))
		}
	}
}
