package interp

import (
	"math"

	"github.com/cwbudde/shard/internal/ir"
)

func evalArith(op ir.ArithOp, lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case Int8:
		r, ok := rhs.(Int8)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithInt(op, int64(l.Val), int64(r.Val))
		if err != nil {
			return nil, err
		}
		return Int8{int8(v)}, nil
	case Int16:
		r, ok := rhs.(Int16)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithInt(op, int64(l.Val), int64(r.Val))
		if err != nil {
			return nil, err
		}
		return Int16{int16(v)}, nil
	case Int32:
		r, ok := rhs.(Int32)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithInt(op, int64(l.Val), int64(r.Val))
		if err != nil {
			return nil, err
		}
		return Int32{int32(v)}, nil
	case Int64:
		r, ok := rhs.(Int64)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithInt(op, l.Val, r.Val)
		if err != nil {
			return nil, err
		}
		return Int64{v}, nil
	case Float32:
		r, ok := rhs.(Float32)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithFloat(op, float64(l.Val), float64(r.Val))
		if err != nil {
			return nil, err
		}
		return Float32{float32(v)}, nil
	case Float64:
		r, ok := rhs.(Float64)
		if !ok {
			return nil, &TypeMismatchError{Message: "arithmetic operand type mismatch"}
		}
		v, err := arithFloat(op, l.Val, r.Val)
		if err != nil {
			return nil, err
		}
		return Float64{v}, nil
	default:
		return nil, &TypeMismatchError{Message: "arithmetic on a non-numeric value"}
	}
}

// arithInt implements Add/Sub/Mul/Div/Rem for Go's signed integer types,
// which already round division toward zero and give remainder the sign
// of the dividend.
func arithInt(op ir.ArithOp, l, r int64) (int64, error) {
	switch op {
	case ir.ArithAdd:
		return l + r, nil
	case ir.ArithSub:
		return l - r, nil
	case ir.ArithMul:
		return l * r, nil
	case ir.ArithDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "division"}
		}
		return l / r, nil
	case ir.ArithRem:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "remainder"}
		}
		return l % r, nil
	default:
		return 0, &TypeMismatchError{Message: "unknown arithmetic op"}
	}
}

func arithFloat(op ir.ArithOp, l, r float64) (float64, error) {
	switch op {
	case ir.ArithAdd:
		return l + r, nil
	case ir.ArithSub:
		return l - r, nil
	case ir.ArithMul:
		return l * r, nil
	case ir.ArithDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "division"}
		}
		return l / r, nil
	case ir.ArithRem:
		if r == 0 {
			return 0, &DivisionByZeroError{Op: "remainder"}
		}
		return math.Mod(l, r), nil
	default:
		return 0, &TypeMismatchError{Message: "unknown arithmetic op"}
	}
}

func evalBitwise(op ir.BitwiseOp, lhs, rhs Value) (Value, error) {
	l, r, ok := bothInt64(lhs, rhs)
	if !ok {
		return nil, &TypeMismatchError{Message: "bitwise operand is not an integer"}
	}
	var v int64
	switch op {
	case ir.BitwiseAnd:
		v = l & r
	case ir.BitwiseOr:
		v = l | r
	case ir.BitwiseXor:
		v = l ^ r
	default:
		return nil, &TypeMismatchError{Message: "unknown bitwise op"}
	}
	return rewrap(lhs, v), nil
}

func bothInt64(lhs, rhs Value) (int64, int64, bool) {
	l, ok := asInt64(lhs)
	if !ok {
		return 0, 0, false
	}
	r, ok := asInt64(rhs)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

func asInt64(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int1:
		if t.Val {
			return 1, true
		}
		return 0, true
	case Int8:
		return int64(t.Val), true
	case Int16:
		return int64(t.Val), true
	case Int32:
		return int64(t.Val), true
	case Int64:
		return t.Val, true
	default:
		return 0, false
	}
}

// rewrap reconstructs a runtime value of the same concrete kind as
// sample, holding the integer result v.
func rewrap(sample Value, v int64) Value {
	switch sample.(type) {
	case Int1:
		return Int1{v != 0}
	case Int8:
		return Int8{int8(v)}
	case Int16:
		return Int16{int16(v)}
	case Int32:
		return Int32{int32(v)}
	default:
		return Int64{v}
	}
}

func evalCmp(op ir.CmpOp, lhs, rhs Value) (Value, error) {
	cmp, err := compare(lhs, rhs)
	if err != nil {
		return nil, err
	}
	var result bool
	switch op {
	case ir.CmpEQ:
		result = cmp == 0
	case ir.CmpNE:
		result = cmp != 0
	case ir.CmpLT:
		result = cmp < 0
	case ir.CmpLE:
		result = cmp <= 0
	case ir.CmpGT:
		result = cmp > 0
	case ir.CmpGE:
		result = cmp >= 0
	default:
		return nil, &TypeMismatchError{Message: "unknown comparison op"}
	}
	return Int1{result}, nil
}

// compare returns a negative, zero, or positive int as lhs is less than,
// equal to, or greater than rhs. Both operands must share a concrete
// runtime type.
func compare(lhs, rhs Value) (int, error) {
	switch l := lhs.(type) {
	case Int1:
		r, ok := rhs.(Int1)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return boolCompare(l.Val, r.Val), nil
	case Int8:
		r, ok := rhs.(Int8)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return intCompare(int64(l.Val), int64(r.Val)), nil
	case Int16:
		r, ok := rhs.(Int16)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return intCompare(int64(l.Val), int64(r.Val)), nil
	case Int32:
		r, ok := rhs.(Int32)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return intCompare(int64(l.Val), int64(r.Val)), nil
	case Int64:
		r, ok := rhs.(Int64)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return intCompare(l.Val, r.Val), nil
	case Float32:
		r, ok := rhs.(Float32)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return floatCompare(float64(l.Val), float64(r.Val)), nil
	case Float64:
		r, ok := rhs.(Float64)
		if !ok {
			return 0, &TypeMismatchError{Message: "comparison operand type mismatch"}
		}
		return floatCompare(l.Val, r.Val), nil
	default:
		return 0, &TypeMismatchError{Message: "comparison on a non-comparable value"}
	}
}

func intCompare(l, r int64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func floatCompare(l, r float64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func boolCompare(l, r bool) int {
	if l == r {
		return 0
	}
	if !l && r {
		return -1
	}
	return 1
}
