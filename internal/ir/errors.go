package ir

import "fmt"

// InvariantError is returned by a builder method when the requested
// instruction or type would violate one of the typing invariants in the
// data model — mismatched operand types, a branch to a block from another
// function, a call with the wrong argument count. Construction fails
// before any child object is created or appended.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ir: invalid %s: %s", e.Op, e.Message)
}

func invariantf(op, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Message: fmt.Sprintf(format, args...)}
}
