package ir

import "fmt"

// Value is anything an instruction can consume or produce: a function
// argument, an instruction result, or a constant. Identity matters more
// than content — two ConstInt32 values with the same payload are still
// distinct Values unless they are the same Go pointer — so code that
// needs to recognize "the same value" again (the codec's value-id table,
// the interpreter's frame map) keys on the pointer, not on a contained id.
type Value interface {
	Type() Type
	IsConst() bool
}

// VirtualValue is a non-constant value: a function argument or the result
// of a result-producing instruction. It carries no identifier of its own;
// the codec assigns ids at serialization time, in first-write order.
type VirtualValue struct {
	typ Type
}

// NewVirtualValue returns a fresh VirtualValue of type typ. Callers do not
// normally call this directly — Module.CreateFunction and the Block
// instruction builders create and return the VirtualValues they own.
func NewVirtualValue(typ Type) *VirtualValue {
	return &VirtualValue{typ: typ}
}

func (v *VirtualValue) Type() Type    { return v.typ }
func (v *VirtualValue) IsConst() bool { return false }
func (v *VirtualValue) String() string { return "%val" }

// ConstInt1 is a boolean constant encoded as a single bit.
type ConstInt1 struct{ Val bool }

func (c *ConstInt1) Type() Type    { return Int1Type }
func (c *ConstInt1) IsConst() bool { return true }
func (c *ConstInt1) String() string {
	if c.Val {
		return "true"
	}
	return "false"
}

// ConstInt8 is an 8-bit signed integer constant.
type ConstInt8 struct{ Val int8 }

func (c *ConstInt8) Type() Type     { return Int8Type }
func (c *ConstInt8) IsConst() bool  { return true }
func (c *ConstInt8) String() string { return fmt.Sprintf("%d", c.Val) }

// ConstInt16 is a 16-bit signed integer constant.
type ConstInt16 struct{ Val int16 }

func (c *ConstInt16) Type() Type     { return Int16Type }
func (c *ConstInt16) IsConst() bool  { return true }
func (c *ConstInt16) String() string { return fmt.Sprintf("%d", c.Val) }

// ConstInt32 is a 32-bit signed integer constant.
type ConstInt32 struct{ Val int32 }

func (c *ConstInt32) Type() Type     { return Int32Type }
func (c *ConstInt32) IsConst() bool  { return true }
func (c *ConstInt32) String() string { return fmt.Sprintf("%d", c.Val) }

// ConstInt64 is a 64-bit signed integer constant.
type ConstInt64 struct{ Val int64 }

func (c *ConstInt64) Type() Type     { return Int64Type }
func (c *ConstInt64) IsConst() bool  { return true }
func (c *ConstInt64) String() string { return fmt.Sprintf("%d", c.Val) }

// ConstFloat32 is a 32-bit floating-point constant.
type ConstFloat32 struct{ Val float32 }

func (c *ConstFloat32) Type() Type     { return Float32Type }
func (c *ConstFloat32) IsConst() bool  { return true }
func (c *ConstFloat32) String() string { return fmt.Sprintf("%g", c.Val) }

// ConstFloat64 is a 64-bit floating-point constant.
type ConstFloat64 struct{ Val float64 }

func (c *ConstFloat64) Type() Type     { return Float64Type }
func (c *ConstFloat64) IsConst() bool  { return true }
func (c *ConstFloat64) String() string { return fmt.Sprintf("%g", c.Val) }
