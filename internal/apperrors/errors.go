package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError rejects an operation whose input breaks an engine rule
// (empty name, non-positive quantity or amount, overpayment).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// NotFoundError signals an unknown order, item, payment or product id, or an
// order that is no longer in the open set.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// CorruptStateError reports a persisted collection that could not be decoded.
// Loads fail closed: the caller receives an empty collection together with
// this error instead of a raw parse failure.
type CorruptStateError struct {
	Collection string
	Err        error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt persisted state in collection %q: %v", e.Collection, e.Err)
}

func (e *CorruptStateError) Unwrap() error {
	return e.Err
}

func NewCorruptState(collection string, err error) error {
	return &CorruptStateError{Collection: collection, Err: err}
}

func IsCorruptState(err error) bool {
	var cse *CorruptStateError
	return errors.As(err, &cse)
}
