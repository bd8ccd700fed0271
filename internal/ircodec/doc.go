// Package ircodec implements the binary wire format for ir.Module: a
// dense, little-endian encoding with a four-byte magic, a two-byte
// version, a struct table, and a function list whose instructions are
// opcode-dispatched with per-family operand-encoding variants.
//
// Encode and Decode are inverses: for any module that Encode accepts,
// Decode(Encode(m)) reconstructs a module that compares structurally equal
// to m. Encode rejects, with an UnsupportedOperandError, operand kinds that
// have no opcode in the table even where the ir builders allow them: a
// constant lhs of Add, Mul or Cmp, two constant operands, and a constant
// Return value or branch condition.
package ircodec
