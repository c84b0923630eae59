// Package rtest provides small assertion helpers, in the shape restic's
// own internal/test package takes (OK, Equals, Assert, TempDir): thin
// wrappers over t.Fatalf that keep table-driven tests terse. restic never
// imports testify, and neither do we; structured comparisons use
// github.com/google/go-cmp, restic's own diffing library for test
// assertions (e.g. internal/restic/duration_test.go).
package rtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// OK fails the test immediately if err is non-nil.
func OK(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
}

// Equals fails the test if want and got differ, printing a cmp.Diff of the
// two values.
func Equals(t testing.TB, want, got interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// Assert fails the test with the given message if cond is false.
func Assert(t testing.TB, cond bool, msg string, args ...interface{}) {
	t.Helper()
	if !cond {
		t.Fatalf(msg, args...)
	}
}

// TempDir returns a fresh temporary directory that is removed when the
// test completes.
func TempDir(t testing.TB) string {
	t.Helper()
	return t.TempDir()
}
