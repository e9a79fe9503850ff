package errors

import (
	"fmt"
)

// RunError reports a failed fixture run. It carries the pipeline stage and
// entity kind that failed, the last kind whose writes fully committed, and
// the taxonomy error classifying the failure.
type RunError struct {
	Stage         string
	Kind          string
	LastCommitted string
	Class         *BaseError
	Err           error
}

// NewRunError classifies err under class for the given stage and kind
func NewRunError(class *BaseError, stage, kind, lastCommitted string, err error) *RunError {
	return &RunError{
		Stage:         stage,
		Kind:          kind,
		LastCommitted: lastCommitted,
		Class:         class,
		Err:           err,
	}
}

// Error implements the error interface
func (e *RunError) Error() string {
	msg := fmt.Sprintf("%s during %s", e.Class.Message(), e.Stage)
	if e.Kind != "" {
		msg += " of " + e.Kind
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the taxonomy class and the cause
func (e *RunError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Class}
	}

	return []error{e.Class, e.Err}
}

// HTTPCode returns the HTTP status code
func (e *RunError) HTTPCode() int {
	return e.Class.HTTPCode()
}

// ErrorCode returns the business error code
func (e *RunError) ErrorCode() string {
	return e.Class.ErrorCode()
}

// Message returns the user-friendly error message
func (e *RunError) Message() string {
	return e.Class.Message()
}

// Details returns the stage, kind and cause
func (e *RunError) Details() string {
	return e.Error()
}
