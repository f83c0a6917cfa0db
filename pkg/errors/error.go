package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType categorizes a structural failure.
type ErrorType string

const (
	ErrorTypeInvalidArgument    ErrorType = "invalid_argument"    // Bad or unrelated argument
	ErrorTypePreconditionFailed ErrorType = "precondition_failed" // Receiver in the wrong state
)

// Error is returned by every failed node operation.
type Error struct {
	Type    ErrorType // Category of error
	Op      string    // Operation that failed (e.g. "add_child")
	Message string    // Human-readable detail
}

// Sentinels for errors.Is matching. Only the Type is compared.
var (
	ErrInvalidArgument    = &Error{Type: ErrorTypeInvalidArgument}
	ErrPreconditionFailed = &Error{Type: ErrorTypePreconditionFailed}
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Op, e.Message)
}

// Is reports whether target is an *Error of the same type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// InvalidArgument creates an invalid_argument error for op.
func InvalidArgument(op, format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypeInvalidArgument,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// PreconditionFailed creates a precondition_failed error for op.
func PreconditionFailed(op, format string, args ...any) *Error {
	return &Error{
		Type:    ErrorTypePreconditionFailed,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// TypeOf returns the ErrorType of the first *Error in err's chain, or "" if
// there is none.
func TypeOf(err error) ErrorType {
	var e *Error
	if !stderrors.As(err, &e) {
		return ""
	}
	return e.Type
}
