// Package ir implements Shard's SSA-style intermediate representation: a
// type system distinct from the AST's, a constant pool, typed instructions
// grouped into basic blocks, and the module/function containers that wire
// them into a control-flow graph.
//
// A module is built incrementally through factory methods on Module,
// Function and Block that create and take ownership of child objects,
// returning a non-owning handle (a pointer) that stays valid for the
// module's lifetime. Once built, a module is treated as immutable by the
// codec and the interpreter.
package ir
