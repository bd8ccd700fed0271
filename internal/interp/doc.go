// Package interp is a frame-based tree-walking interpreter for ir.Module.
// Load registers a module; Call resolves a function by name and arity,
// binds arguments to a fresh frame, and walks the entry block's
// instructions, following branches until a Return terminates the call.
//
// Runtime values are a small tagged union over the IR's primitive types
// plus a pointer representation addressing a frame-local arena cell.
// Frames and their arenas are ordinary Go values; a call's storage is
// released simply by letting the frame go out of scope.
package interp
