package common

import "errors"

// Classification codes attached to operation failures.
const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodePersistence = "persistence"
)

// OpError attaches a classification code to an operation failure so the
// interactive layer can decide how to report it. Validation and not-found
// failures happen before any state mutated; persistence failures mean the
// in-memory aggregate and the store may now diverge.
type OpError struct {
	Code string
	Err  error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

// Unwrap allows errors.Is/As to inspect the underlying error.
func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Validation marks err as a validation failure.
func Validation(err error) error {
	return &OpError{Code: CodeValidation, Err: err}
}

// NotFound marks err as a lookup miss.
func NotFound(err error) error {
	return &OpError{Code: CodeNotFound, Err: err}
}

// Persistence marks err as a gateway failure.
func Persistence(err error) error {
	return &OpError{Code: CodePersistence, Err: err}
}

// CodeOf returns the classification code carried by err, or "" when it has none.
func CodeOf(err error) string {
	var op *OpError
	if errors.As(err, &op) {
		return op.Code
	}
	return ""
}
