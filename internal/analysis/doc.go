// Package analysis implements the lexically scoped name resolution used by
// semantic analysis: a chain of Contexts mapping names to the ast.Decl that
// introduced them, plus a small walker that applies the two checks the core
// is responsible for — duplicate declarations and unresolved identifiers.
package analysis
