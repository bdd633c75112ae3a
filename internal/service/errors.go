// Package service holds the business rules between the HTTP handlers
// and the repositories: input validation, the marking workflow and the
// report projections. Services are stateless; every call goes straight
// through to the shared store.
package service

import "errors"

// ValidationError reports input rejected before any store access. The
// Reason is the human-readable message shown to the caller; no state
// has changed when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
