package interp

import (
	"fmt"

	"github.com/cwbudde/shard/internal/ir"
)

// Value is a runtime value: one of the primitive IR types, a pointer into
// a frame's arena, or Void (the absence of a value, returned by a call
// to a function with no return type).
type Value interface {
	Type() ir.Type
	String() string
}

type Int1 struct{ Val bool }

func (v Int1) Type() ir.Type { return ir.Int1Type }
func (v Int1) String() string {
	if v.Val {
		return "true"
	}
	return "false"
}

type Int8 struct{ Val int8 }

func (v Int8) Type() ir.Type    { return ir.Int8Type }
func (v Int8) String() string   { return fmt.Sprintf("%d", v.Val) }

type Int16 struct{ Val int16 }

func (v Int16) Type() ir.Type  { return ir.Int16Type }
func (v Int16) String() string { return fmt.Sprintf("%d", v.Val) }

type Int32 struct{ Val int32 }

func (v Int32) Type() ir.Type  { return ir.Int32Type }
func (v Int32) String() string { return fmt.Sprintf("%d", v.Val) }

type Int64 struct{ Val int64 }

func (v Int64) Type() ir.Type  { return ir.Int64Type }
func (v Int64) String() string { return fmt.Sprintf("%d", v.Val) }

type Float32 struct{ Val float32 }

func (v Float32) Type() ir.Type  { return ir.Float32Type }
func (v Float32) String() string { return fmt.Sprintf("%g", v.Val) }

type Float64 struct{ Val float64 }

func (v Float64) Type() ir.Type  { return ir.Float64Type }
func (v Float64) String() string { return fmt.Sprintf("%g", v.Val) }

// Pointer addresses a single arena cell created by an Alloc instruction.
// It carries no element index of its own; the element within the cell is
// selected by the Index operand of each Store or Load (zero when absent).
type Pointer struct {
	Cell *cell
}

func (v Pointer) Type() ir.Type  { return &ir.PointerType{Pointee: v.Cell.elemType(0)} }
func (v Pointer) String() string { return "<ptr>" }

// Void is the result of calling a function with no return type.
type Void struct{}

func (v Void) Type() ir.Type  { return nil }
func (v Void) String() string { return "void" }

// cell is one Alloc instruction's storage: a flat slice of values, one
// per array element (for a counted alloc) or one per struct field (for a
// struct alloc), addressed by the Store/Load Index operand.
type cell struct {
	values []Value
	types  []ir.Type
}

func (c *cell) elemType(i int) ir.Type {
	if i < 0 || i >= len(c.types) {
		return nil
	}
	return c.types[i]
}

func newCell(allocType ir.Type, count *uint32) *cell {
	base := fieldTypes(allocType)
	reps := 1
	if count != nil {
		reps = int(*count)
	}
	c := &cell{}
	for r := 0; r < reps; r++ {
		for _, t := range base {
			c.types = append(c.types, t)
			c.values = append(c.values, zeroValue(t))
		}
	}
	return c
}

func fieldTypes(t ir.Type) []ir.Type {
	if st, ok := t.(*ir.StructType); ok {
		return st.Fields
	}
	return []ir.Type{t}
}

func zeroValue(t ir.Type) Value {
	switch t.Kind() {
	case ir.KindInt1:
		return Int1{}
	case ir.KindInt8:
		return Int8{}
	case ir.KindInt16:
		return Int16{}
	case ir.KindInt32:
		return Int32{}
	case ir.KindInt64:
		return Int64{}
	case ir.KindFloat32:
		return Float32{}
	case ir.KindFloat64:
		return Float64{}
	default:
		return Void{}
	}
}

// fromConst converts an ir constant leaf to its runtime counterpart.
func fromConst(v ir.Value) (Value, error) {
	switch c := v.(type) {
	case *ir.ConstInt1:
		return Int1{c.Val}, nil
	case *ir.ConstInt8:
		return Int8{c.Val}, nil
	case *ir.ConstInt16:
		return Int16{c.Val}, nil
	case *ir.ConstInt32:
		return Int32{c.Val}, nil
	case *ir.ConstInt64:
		return Int64{c.Val}, nil
	case *ir.ConstFloat32:
		return Float32{c.Val}, nil
	case *ir.ConstFloat64:
		return Float64{c.Val}, nil
	default:
		return nil, &TypeMismatchError{Message: "operand is not a recognized constant kind"}
	}
}
