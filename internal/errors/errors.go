// Package errors wraps github.com/pkg/errors and adds a Fatal error kind
// for conditions the core is entitled to abort on (spec.md §7): startup
// failures and structural input-grammar violations.
package errors

import (
	"github.com/pkg/errors"
)

// Exported pass-throughs so callers only ever need to import this package.
var (
	New    = errors.New
	Errorf = errors.Errorf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Cause  = errors.Cause
	As     = errors.As
	Is     = errors.Is
)

// fatal marks an error as fatal: the CLI prints its message alone, with no
// stack trace, and exits non-zero.
type fatal struct {
	error
}

// Fatal returns an error that main treats as a clean, user-facing failure.
func Fatal(s string) error {
	return fatal{errors.New(s)}
}

// Fatalf is Fatal with formatting.
func Fatalf(format string, args ...interface{}) error {
	return fatal{errors.Errorf(format, args...)}
}

// IsFatal reports whether err (or something it wraps) was created by Fatal
// or Fatalf.
func IsFatal(err error) bool {
	var f fatal
	return errors.As(err, &f)
}
