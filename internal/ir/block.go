package ir

import "fmt"

// Block is a basic block: a straight-line sequence of instructions ending
// in exactly one terminator (BranchInst, BranchCondInst, ReturnInst or
// ReturnVoidInst). The Create* methods append to Instrs and enforce the
// typing invariants from the data model; they do not enforce that a
// terminator comes last or that only one terminator exists, which is a
// module-level well-formedness concern left to validation, not
// construction.
type Block struct {
	Fn     *Function
	Instrs []Instruction
}

func (b *Block) label() string {
	for i, blk := range b.Fn.Blocks {
		if blk == b {
			return fmt.Sprintf("@L_%d", i)
		}
	}
	return "@L_?"
}

func (b *Block) append(inst Instruction) {
	b.Instrs = append(b.Instrs, inst)
}

// CreateAlloc reserves storage for a value of allocType (or an array of
// count of them) and appends an AllocInst. count of nil means a single
// value.
func (b *Block) CreateAlloc(allocType Type, count *uint32) (*VirtualValue, error) {
	if allocType == nil {
		return nil, invariantf("alloc", "alloc type must not be nil")
	}
	dest := NewVirtualValue(&PointerType{Pointee: allocType})
	b.append(&AllocInst{AllocType: allocType, Count: count, Dest: dest})
	return dest, nil
}

// CreateStore writes val through ptr, optionally at index within the
// pointee when the pointee is a StructType. ptr must be a pointer whose
// pointee type matches val's type (or, when index is non-nil, whose
// pointee is a StructType with a matching field at index).
func (b *Block) CreateStore(ptr, val Value, index *uint32) error {
	if ptr == nil || val == nil {
		return invariantf("store", "ptr and val must not be nil")
	}
	ptrType, ok := ptr.Type().(*PointerType)
	if !ok {
		return invariantf("store", "ptr must have pointer type, got %s", ptr.Type())
	}
	fieldType, err := resolveFieldType(ptrType.Pointee, index)
	if err != nil {
		return invariantf("store", "%s", err)
	}
	if !Equal(fieldType, val.Type()) {
		return invariantf("store", "type mismatch: pointee %s, val %s", fieldType, val.Type())
	}
	b.append(&StoreInst{Ptr: ptr, Val: val, Index: index})
	return nil
}

// CreateLoad reads through ptr, optionally at index within the pointee,
// and produces the loaded value.
func (b *Block) CreateLoad(ptr Value, index *uint32) (*VirtualValue, error) {
	if ptr == nil {
		return nil, invariantf("load", "ptr must not be nil")
	}
	ptrType, ok := ptr.Type().(*PointerType)
	if !ok {
		return nil, invariantf("load", "ptr must have pointer type, got %s", ptr.Type())
	}
	fieldType, err := resolveFieldType(ptrType.Pointee, index)
	if err != nil {
		return nil, invariantf("load", "%s", err)
	}
	dest := NewVirtualValue(fieldType)
	b.append(&LoadInst{Ptr: ptr, Index: index, Dest: dest})
	return dest, nil
}

func resolveFieldType(pointee Type, index *uint32) (Type, error) {
	if index == nil {
		return pointee, nil
	}
	st, ok := pointee.(*StructType)
	if !ok {
		return nil, fmt.Errorf("an index requires a struct pointee, got %s", pointee)
	}
	if int(*index) >= len(st.Fields) {
		return nil, fmt.Errorf("index %d out of range for struct with %d fields", *index, len(st.Fields))
	}
	return st.Fields[*index], nil
}

// CreateArith appends an arithmetic instruction computing op(lhs, rhs).
// lhs and rhs must share an identical primitive numeric type.
func (b *Block) CreateArith(op ArithOp, lhs, rhs Value) (*VirtualValue, error) {
	if lhs == nil || rhs == nil {
		return nil, invariantf("arith", "lhs and rhs must not be nil")
	}
	if !Equal(lhs.Type(), rhs.Type()) {
		return nil, invariantf("arith", "operand type mismatch: %s vs %s", lhs.Type(), rhs.Type())
	}
	k := lhs.Type().Kind()
	if !k.IsInteger() && !k.IsFloat() {
		return nil, invariantf("arith", "operand type %s is not numeric", lhs.Type())
	}
	dest := NewVirtualValue(lhs.Type())
	b.append(&ArithInst{Op: op, LHS: lhs, RHS: rhs, Dest: dest})
	return dest, nil
}

// CreateCmp appends a comparison instruction computing op(lhs, rhs); the
// result is always Int1Type. lhs and rhs must have Equal types; the
// operand type itself is not checked to be numeric.
func (b *Block) CreateCmp(op CmpOp, lhs, rhs Value) (*VirtualValue, error) {
	if lhs == nil || rhs == nil {
		return nil, invariantf("cmp", "lhs and rhs must not be nil")
	}
	if !Equal(lhs.Type(), rhs.Type()) {
		return nil, invariantf("cmp", "operand type mismatch: %s vs %s", lhs.Type(), rhs.Type())
	}
	dest := NewVirtualValue(Int1Type)
	b.append(&CmpInst{Op: op, LHS: lhs, RHS: rhs, Dest: dest})
	return dest, nil
}

// CreateBitwise appends a bitwise instruction computing op(lhs, rhs). lhs
// and rhs must share an identical integer type.
func (b *Block) CreateBitwise(op BitwiseOp, lhs, rhs Value) (*VirtualValue, error) {
	if lhs == nil || rhs == nil {
		return nil, invariantf("bitwise", "lhs and rhs must not be nil")
	}
	if !Equal(lhs.Type(), rhs.Type()) {
		return nil, invariantf("bitwise", "operand type mismatch: %s vs %s", lhs.Type(), rhs.Type())
	}
	if !lhs.Type().Kind().IsInteger() {
		return nil, invariantf("bitwise", "operand type %s is not integral", lhs.Type())
	}
	dest := NewVirtualValue(lhs.Type())
	b.append(&BitwiseInst{Op: op, LHS: lhs, RHS: rhs, Dest: dest})
	return dest, nil
}

// CreateBranch appends an unconditional branch to target, which must
// belong to the same function as b.
func (b *Block) CreateBranch(target *Block) error {
	if target == nil {
		return invariantf("branch", "target must not be nil")
	}
	if target.Fn != b.Fn {
		return invariantf("branch", "target block belongs to a different function")
	}
	b.append(&BranchInst{Target: target})
	return nil
}

// CreateBranchCond appends a conditional branch. cond must be Int1Type;
// trueTarget and falseTarget must belong to the same function as b.
func (b *Block) CreateBranchCond(cond Value, trueTarget, falseTarget *Block) error {
	if cond == nil {
		return invariantf("branch.cond", "cond must not be nil")
	}
	if cond.Type().Kind() != KindInt1 {
		return invariantf("branch.cond", "cond must be i1, got %s", cond.Type())
	}
	if trueTarget == nil || falseTarget == nil {
		return invariantf("branch.cond", "targets must not be nil")
	}
	if trueTarget.Fn != b.Fn || falseTarget.Fn != b.Fn {
		return invariantf("branch.cond", "targets must belong to the same function")
	}
	b.append(&BranchCondInst{Cond: cond, TrueTarget: trueTarget, FalseTarget: falseTarget})
	return nil
}

// CreateCall appends a call to callee with args. The argument count and
// types must match callee's parameter list exactly. The returned
// VirtualValue is nil when callee has no return type.
func (b *Block) CreateCall(callee *Function, args []Value) (*VirtualValue, error) {
	if callee == nil {
		return nil, invariantf("call", "callee must not be nil")
	}
	if len(args) != len(callee.Params) {
		return nil, invariantf("call", "argument count %d does not match parameter count %d", len(args), len(callee.Params))
	}
	for i, a := range args {
		if a == nil {
			return nil, invariantf("call", "argument %d must not be nil", i)
		}
		if !Equal(a.Type(), callee.Params[i]) {
			return nil, invariantf("call", "argument %d type mismatch: %s vs %s", i, a.Type(), callee.Params[i])
		}
	}
	var dest *VirtualValue
	if callee.ReturnType != nil {
		dest = NewVirtualValue(callee.ReturnType)
	}
	b.append(&CallInst{Callee: callee, Args: args, Dest: dest})
	return dest, nil
}

// CreateReturn appends a return of val, which must match the enclosing
// function's return type.
func (b *Block) CreateReturn(val Value) error {
	if val == nil {
		return invariantf("return", "val must not be nil")
	}
	if b.Fn.ReturnType == nil {
		return invariantf("return", "function has no return type, use CreateReturnVoid")
	}
	if !Equal(val.Type(), b.Fn.ReturnType) {
		return invariantf("return", "type mismatch: %s vs function return type %s", val.Type(), b.Fn.ReturnType)
	}
	b.append(&ReturnInst{Val: val})
	return nil
}

// CreateReturnVoid appends a void return. The enclosing function must
// have no return type.
func (b *Block) CreateReturnVoid() error {
	if b.Fn.ReturnType != nil {
		return invariantf("return", "function has return type %s, use CreateReturn", b.Fn.ReturnType)
	}
	b.append(&ReturnVoidInst{})
	return nil
}
