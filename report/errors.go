package report

import (
	"fmt"

	"github.com/pkg/errors"
)

// CompileError is a semantic or syntactic error in the program being compiled.
// Compile errors are thrown with `panic` at the point of detection and caught
// at the phase boundary by CatchErrors: compilation never continues past the
// first one.
type CompileError struct {
	Message string

	// The span may be nil if the error has no useful position.
	Span *TextSpan
}

func (ce *CompileError) Error() string {
	if ce.Span == nil {
		return ce.Message
	}

	return fmt.Sprintf("%d:%d: %s", ce.Span.StartLine+1, ce.Span.StartCol+1, ce.Message)
}

// Raise creates a new compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *CompileError {
	return &CompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// InternalError is a defect in the compiler itself: a condition that no input
// program should be able to produce.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal compiler error: " + ie.Message
}

// ICE throws an internal compiler error.
func ICE(msg string, args ...interface{}) {
	panic(&InternalError{Message: fmt.Sprintf(msg, args...)})
}

// CatchErrors recovers compile errors and internal errors thrown during a phase
// of compilation and stores them in err.  Any other panic keeps unwinding.
// NB: This function must ALWAYS be deferred.
func CatchErrors(err *error) {
	if x := recover(); x != nil {
		switch v := x.(type) {
		case *CompileError:
			*err = v
		case *InternalError:
			*err = v
		default:
			panic(x)
		}
	}
}

// IsInternal returns whether err is or wraps an internal compiler error.
func IsInternal(err error) bool {
	var ie *InternalError
	return errors.As(err, &ie)
}

// AsCompileError extracts the compile error wrapped by err, if any.
func AsCompileError(err error) (*CompileError, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce, true
	}

	return nil, false
}
