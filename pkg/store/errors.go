package store

import (
	"errors"
	"fmt"
)

// ValidationError reports a malformed or incomplete event on create or
// import. The store is left untouched when one is returned.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid event: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an operation referencing an id that is not in the
// store. Repeating a delete after it succeeded fails with this, it does not
// silently pass.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("store: no event with id %q", e.ID)
}

// PersistenceError wraps a snapshot read or write failure. In-memory state
// is rolled back to the pre-mutation view before one is returned.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store: %s snapshot: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
