// Package common defines shared constants and sentinel errors used across
// the account service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Lifecycle errors.
	ErrorCannotActivate    = errors.New("cannot be activated")
	ErrorInvalidToken      = errors.New("invalid token")
	ErrorCredentialsFailed = errors.New("credentials failed")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)

// AlreadyExistsError is returned by repositories when an insert trips the
// email uniqueness constraint. Message carries the storage layer's own
// constraint text, which is forwarded verbatim to callers.
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string {
	return e.Message
}

// Unwrap makes the error match ErrorAlreadyExists under errors.Is.
func (e *AlreadyExistsError) Unwrap() error {
	return ErrorAlreadyExists
}
