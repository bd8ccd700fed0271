package interp

import (
	"fmt"
	"strings"
)

// CallFrame is one entry in an interpreter call stack: the function that
// was executing when a runtime error propagated out of it.
type CallFrame struct {
	FunctionName string
}

func (f CallFrame) String() string { return f.FunctionName }

// CallStack is a sequence of frames, oldest (the original Call) first.
type CallStack []CallFrame

// String renders the stack most-recent frame first, one per line.
func (st CallStack) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the innermost frame, or the zero frame if the stack is empty.
func (st CallStack) Top() (CallFrame, bool) {
	if len(st) == 0 {
		return CallFrame{}, false
	}
	return st[len(st)-1], true
}

// Depth returns the number of frames on the stack.
func (st CallStack) Depth() int { return len(st) }

// RuntimeError wraps an error raised during execution with the call
// stack active at the point of failure, innermost call last.
type RuntimeError struct {
	Stack CallStack
	Err   error
}

func (e *RuntimeError) Error() string {
	if len(e.Stack) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s\n%s", e.Err.Error(), e.Stack.String())
}

func (e *RuntimeError) Unwrap() error { return e.Err }
