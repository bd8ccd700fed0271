package ast

import "fmt"

// InvariantError is raised when a constructor is asked to build a node that
// would violate one of the ownership or shape invariants of the AST — a nil
// required child, an empty identifier or member name. Construction
// fails eagerly and does not partially build the offending node.
type InvariantError struct {
	Node    string // kind of node being constructed, e.g. "IfStmt"
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ast: invalid %s: %s", e.Node, e.Message)
}

func invariantf(node, format string, args ...any) *InvariantError {
	return &InvariantError{Node: node, Message: fmt.Sprintf(format, args...)}
}
