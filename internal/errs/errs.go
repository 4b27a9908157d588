// Package errs holds the error kinds shared by the mapping, geometry and
// navigation packages. Call sites wrap them with context; use errors.Is to
// recover the kind.
package errs

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter reports a rejected argument such as a
	// non-positive zoom or a degenerate screen range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMissingCollaborator reports a call made before the axis or data
	// source it depends on was attached.
	ErrMissingCollaborator = errors.New("missing collaborator")
)

// Invalid wraps ErrInvalidParameter with a formatted message.
func Invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParameter, format, args...)
}

// Missing wraps ErrMissingCollaborator with a formatted message.
func Missing(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMissingCollaborator, format, args...)
}
