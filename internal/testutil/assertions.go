// Package testutil provides shared test helpers for the sqlbind project.
package testutil

import (
	"errors"
	"testing"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertSliceEqual checks two slices for elementwise equality.
func AssertSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("expected %d elements, got %d\nexpected: %v\ngot:      %v", len(want), len(got), want, got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}

// AssertErrorAs fails the test unless err (or something it wraps) matches
// the target error type. The matched error is returned for inspection.
func AssertErrorAs[E error](t *testing.T, err error) E {
	t.Helper()
	var target E
	if err == nil {
		t.Fatalf("expected a %T but got nil", target)
	}
	if !errors.As(err, &target) {
		t.Fatalf("expected a %T, got %T: %v", target, err, err)
	}
	return target
}
