// Package ast defines the typed tree representation of Shard source
// programs: declarations, statements, expressions, and type references.
//
// Every node owns its children exclusively; there are no back-references
// and no sharing. Constructors reject the arrangements the language
// forbids (a missing loop condition, an empty identifier) by returning an
// *InvariantError rather than building a malformed tree.
package ast
