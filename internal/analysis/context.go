package analysis

import (
	"fmt"

	"github.com/cwbudde/shard/internal/ast"
)

// Context is one scope in the analysis chain: a map of names declared
// directly in this scope plus a link to the enclosing scope. Scopes form a
// singly linked chain oriented toward the root — a Context only ever sees
// its own declarations and those of its ancestors, never its children's.
type Context struct {
	decls  map[string]ast.Decl
	parent *Context
}

// NewContext creates a root context with no enclosing scope.
func NewContext() *Context {
	return &Context{decls: make(map[string]ast.Decl)}
}

// Push returns a new child context chained to c.
func (c *Context) Push() *Context {
	return &Context{decls: make(map[string]ast.Decl), parent: c}
}

// Parent returns the enclosing context, or nil at the root.
func (c *Context) Parent() *Context {
	return c.parent
}

// AddDecl records decl under its name in the current scope. Redeclaring a
// name already present in this same scope is reported as a DuplicateDeclError
// rather than silently replacing the original declaration.
func (c *Context) AddDecl(decl ast.Decl) error {
	name := decl.DeclName()
	if existing, ok := c.decls[name]; ok {
		return &DuplicateDeclError{Name: name, First: existing, Second: decl}
	}
	c.decls[name] = decl
	return nil
}

// FindDecl searches the current scope, then each enclosing scope in turn,
// returning the first match. It reports false if no scope in the chain
// declares name.
func (c *Context) FindDecl(name string) (ast.Decl, bool) {
	for scope := c; scope != nil; scope = scope.parent {
		if d, ok := scope.decls[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// DuplicateDeclError reports a name declared twice in the same scope.
type DuplicateDeclError struct {
	Name   string
	First  ast.Decl
	Second ast.Decl
}

func (e *DuplicateDeclError) Error() string {
	return fmt.Sprintf("analysis: %q is already declared in this scope", e.Name)
}

// UnresolvedIdentError reports a reference to a name no scope in the chain
// declares.
type UnresolvedIdentError struct {
	Name string
}

func (e *UnresolvedIdentError) Error() string {
	return fmt.Sprintf("analysis: undeclared identifier %q", e.Name)
}
