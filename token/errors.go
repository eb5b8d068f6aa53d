package token

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialExpired indicates that no refresh token is available and the
	// caller has to authenticate again.
	ErrCredentialExpired = errors.New("credential is no longer valid, sign in again")

	// ErrInternal indicates a malformed server response or corrupted persisted state.
	ErrInternal = errors.New("internal error")
)

// Error wraps a cache error with the owning identity.
type Error struct {
	Owner string // application or user the cache belongs to
	Op    string // fromJSON, update, ...
	Field string // offending field (if applicable)
	Err   error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %q: %v", e.Owner, e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Owner, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is allows errors.Is to match the wrapped sentinel.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

func internalError(owner, op, field string, cause error) error {
	err := ErrInternal
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrInternal, cause)
	}
	return &Error{Owner: owner, Op: op, Field: field, Err: err}
}
