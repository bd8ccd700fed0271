// Package printer renders an ir.Module as text, for debugging and for
// the irdump CLI. It assigns the same value and block ids the binary
// codec would (args first, then each result-producing instruction in
// emission order; blocks by creation order) so a printed dump and an
// encoded module agree on naming.
package printer
