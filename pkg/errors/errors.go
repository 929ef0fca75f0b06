// Package errors provides the error taxonomy used across logreg.
//
// Every public operation reports failures with one of the typed errors below.
// Each type maps onto a sentinel so callers can branch with errors.Is without
// caring about the concrete type:
//
//   - ShapeError       -> ErrInvalidShape      (wrong number of input columns)
//   - DimensionError   -> ErrDimensionMismatch (theta/X/y lengths disagree)
//   - ValueError       -> ErrInvalidArgument   (bad scalar argument, e.g. lambda < 0)
//   - ValidationError  -> ErrInvalidArgument   (bad data value, e.g. a non-binary label)
//   - NotFittedError   -> ErrNotFitted
//   - ModelError wraps an arbitrary cause, usually ErrEmptyData
//
// Wrapping helpers are re-exported from github.com/cockroachdb/errors so that
// wrapped errors carry stack traces (print with %+v).
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

const prefix = "logreg"

// Sentinel errors.
var (
	ErrEmptyData         = errors.New("empty data")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFitted         = errors.New("not fitted")
	ErrNotImplemented    = errors.New("not implemented")
)

// Re-exported helpers from cockroachdb/errors.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// ShapeError reports an input matrix with an unsupported number of columns.
type ShapeError struct {
	Op       string
	Expected int
	Got      int
}

// NewShapeError creates a ShapeError for operation op.
func NewShapeError(op string, expected, got int) *ShapeError {
	return &ShapeError{Op: op, Expected: expected, Got: got}
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: supports input feature vectors of length %d, not %d",
		prefix, e.Op, e.Expected, e.Got)
}

// Is reports whether target is ErrInvalidShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

// DimensionError reports a length mismatch between two operands.
// Axis is 0 for rows/samples and 1 for columns/features.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int
}

// NewDimensionError creates a DimensionError.
func NewDimensionError(op string, expected, got, axis int) *DimensionError {
	return &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: dimension mismatch on axis %d: expected %d, got %d",
		prefix, e.Op, e.Axis, e.Expected, e.Got)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// ValueError reports an invalid argument value.
type ValueError struct {
	Op      string
	Message string
}

// NewValueError creates a ValueError.
func NewValueError(op, message string) *ValueError {
	return &ValueError{Op: op, Message: message}
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValidationError reports a data value that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

// NewValidationError creates a ValidationError.
func NewValidationError(paramName, reason string, value interface{}) *ValidationError {
	return &ValidationError{ParamName: paramName, Reason: reason, Value: value}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", prefix, e.ParamName, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFittedError reports use of a transformer before Fit.
type NotFittedError struct {
	ModelName string
	Method    string
}

// NewNotFittedError creates a NotFittedError.
func NewNotFittedError(modelName, method string) *NotFittedError {
	return &NotFittedError{ModelName: modelName, Method: method}
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("%s: %s: this instance is not fitted yet; call Fit before %s",
		prefix, e.ModelName, e.Method)
}

// Is reports whether target is ErrNotFitted.
func (e *NotFittedError) Is(target error) bool {
	return target == ErrNotFitted
}

// ModelError attaches an operation and message to an underlying cause.
type ModelError struct {
	Op      string
	Message string
	Err     error
}

// NewModelError creates a ModelError wrapping err.
func NewModelError(op, message string, err error) *ModelError {
	return &ModelError{Op: op, Message: message, Err: err}
}

func (e *ModelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %v", prefix, e.Op, e.Message, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ModelError) Unwrap() error {
	return e.Err
}

// Recover converts a panic raised below op (typically by gonum on a
// malformed matrix) into an error stored in *errp. It must be deferred:
//
//	func Foo() (err error) {
//		defer errors.Recover(&err, "Foo")
//		...
//	}
func Recover(errp *error, op string) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok {
		*errp = errors.Wrapf(e, "%s: %s: recovered from panic", prefix, op)
		return
	}
	*errp = errors.Newf("%s: %s: recovered from panic: %v", prefix, op, r)
}
