package ircodec

import "fmt"

// InvalidFormatError is returned when the stream does not begin with the
// "SHRD" magic bytes. It is always fatal to the read.
type InvalidFormatError struct {
	Got [4]byte
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("ircodec: invalid format, got magic %x", e.Got)
}

// UnsupportedVersionError is returned when the version header does not
// match a version this package can decode.
type UnsupportedVersionError struct {
	Major, Minor byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("ircodec: unsupported version %d.%d", e.Major, e.Minor)
}

// MalformedError is returned for a structurally invalid stream: an
// unknown opcode or type tag, or a value or block id with no referent in
// the function-local mapping.
type MalformedError struct {
	Offset  int
	Message string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("ircodec: malformed input at offset %d: %s", e.Offset, e.Message)
}

// TruncatedError is returned when the stream ends before a length-prefixed
// or fixed-width field can be fully read.
type TruncatedError struct {
	Offset int
	Want   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("ircodec: truncated input at offset %d, wanted %d more bytes", e.Offset, e.Want)
}

// UnsupportedOperandError is returned by the writer when an instruction's
// operand kinds (constant vs. virtual value) have no matching opcode in
// the selection table.
type UnsupportedOperandError struct {
	Instruction string
}

func (e *UnsupportedOperandError) Error() string {
	return fmt.Sprintf("ircodec: %s has no opcode matching its operand kinds", e.Instruction)
}
