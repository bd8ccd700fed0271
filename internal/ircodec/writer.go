package ircodec

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/cwbudde/shard/internal/ir"
)

// Encode serializes m into the binary wire format described in the
// package doc comment. The returned slice always begins with the magic
// and version header.
func Encode(m *ir.Module) ([]byte, error) {
	w := &writer{
		buf:       &bytes.Buffer{},
		structIdx: make(map[*ir.StructType]uint16, len(m.Structs)),
	}
	w.buf.Write(magic[:])
	w.buf.WriteByte(versionMajor)
	w.buf.WriteByte(versionMinor)

	for i, st := range m.Structs {
		w.structIdx[st] = uint16(i)
	}
	w.writeU16(uint16(len(m.Structs)))
	for _, st := range m.Structs {
		w.writeU16(uint16(len(st.Fields)))
		for _, f := range st.Fields {
			if err := w.writeType(f); err != nil {
				return nil, err
			}
		}
	}

	w.writeU16(uint16(len(m.Functions)))
	for _, fn := range m.Functions {
		if err := w.writeFunction(fn); err != nil {
			return nil, err
		}
	}

	return w.buf.Bytes(), nil
}

type writer struct {
	buf       *bytes.Buffer
	structIdx map[*ir.StructType]uint16
}

func (w *writer) writeU16(v uint16) { _ = binary.Write(w.buf, binary.LittleEndian, v) }
func (w *writer) writeU32(v uint32) { _ = binary.Write(w.buf, binary.LittleEndian, v) }

func (w *writer) writeString(s string) {
	w.writeU16(uint16(len(s)))
	w.buf.WriteString(s)
}

func (w *writer) writeType(t ir.Type) error {
	if t == nil {
		w.buf.WriteByte(tagVoid)
		return nil
	}
	switch t.Kind() {
	case ir.KindInt1:
		w.buf.WriteByte(tagInt1)
	case ir.KindInt8:
		w.buf.WriteByte(tagInt8)
	case ir.KindInt16:
		w.buf.WriteByte(tagInt16)
	case ir.KindInt32:
		w.buf.WriteByte(tagInt32)
	case ir.KindInt64:
		w.buf.WriteByte(tagInt64)
	case ir.KindFloat32:
		w.buf.WriteByte(tagFloat32)
	case ir.KindFloat64:
		w.buf.WriteByte(tagFloat64)
	case ir.KindPointer:
		w.buf.WriteByte(tagPointer)
		return w.writeType(t.(*ir.PointerType).Pointee)
	case ir.KindStruct:
		idx, ok := w.structIdx[t.(*ir.StructType)]
		if !ok {
			return &UnsupportedOperandError{Instruction: "struct type not registered in module"}
		}
		w.buf.WriteByte(tagStruct)
		w.writeU16(idx)
	default:
		return &UnsupportedOperandError{Instruction: "unknown type kind"}
	}
	return nil
}

func (w *writer) writeConstant(v ir.Value) error {
	switch c := v.(type) {
	case *ir.ConstInt1:
		if c.Val {
			w.buf.WriteByte(1)
		} else {
			w.buf.WriteByte(0)
		}
	case *ir.ConstInt8:
		w.buf.WriteByte(byte(c.Val))
	case *ir.ConstInt16:
		w.writeU16(uint16(c.Val))
	case *ir.ConstInt32:
		w.writeU32(uint32(c.Val))
	case *ir.ConstInt64:
		_ = binary.Write(w.buf, binary.LittleEndian, uint64(c.Val))
	case *ir.ConstFloat32:
		w.writeU32(math.Float32bits(c.Val))
	case *ir.ConstFloat64:
		_ = binary.Write(w.buf, binary.LittleEndian, math.Float64bits(c.Val))
	default:
		return &UnsupportedOperandError{Instruction: "unknown constant kind"}
	}
	return nil
}

// funcCtx tracks the per-function value and block id assignment while
// writing a single function body.
type funcCtx struct {
	ids    map[ir.Value]uint16
	blocks map[*ir.Block]uint16
	next   uint16
}

func (f *funcCtx) idFor(v ir.Value) (uint16, bool) {
	id, ok := f.ids[v]
	return id, ok
}

func (f *funcCtx) allocResult(v ir.Value) uint16 {
	id := f.next
	f.next++
	f.ids[v] = id
	return id
}

func (w *writer) writeFunction(fn *ir.Function) error {
	w.writeString(fn.Name)
	if err := w.writeType(fn.ReturnType); err != nil {
		return err
	}
	w.writeU16(uint16(len(fn.Params)))
	for _, p := range fn.Params {
		if err := w.writeType(p); err != nil {
			return err
		}
	}

	fc := &funcCtx{
		ids:    make(map[ir.Value]uint16),
		blocks: make(map[*ir.Block]uint16, len(fn.Blocks)),
	}
	for i, a := range fn.Args {
		fc.ids[a] = uint16(i)
	}
	fc.next = uint16(len(fn.Args))
	for i, b := range fn.Blocks {
		fc.blocks[b] = uint16(i)
	}

	w.writeU16(uint16(len(fn.Blocks)))
	for _, b := range fn.Blocks {
		if err := w.writeBlock(b, fc); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeBlock(b *ir.Block, fc *funcCtx) error {
	w.writeU16(uint16(len(b.Instrs)))
	for _, inst := range b.Instrs {
		if err := w.writeInstruction(inst, fc); err != nil {
			return err
		}
	}
	return nil
}

// writeValueRef writes v as a value reference: a u16 id resolved through
// fc. v must not be a constant; callers that might receive a constant in
// this position must check first.
func (w *writer) writeValueRef(v ir.Value, fc *funcCtx) error {
	id, ok := fc.idFor(v)
	if !ok {
		return &UnsupportedOperandError{Instruction: "reference to a value outside the function"}
	}
	w.writeU16(id)
	return nil
}

func (w *writer) writeInstruction(inst ir.Instruction, fc *funcCtx) error {
	switch i := inst.(type) {
	case *ir.AllocInst:
		return w.writeAlloc(i, fc)
	case *ir.StoreInst:
		return w.writeStore(i, fc)
	case *ir.LoadInst:
		return w.writeLoad(i, fc)
	case *ir.ArithInst:
		return w.writeArith(i, fc)
	case *ir.CmpInst:
		return w.writeCmp(i, fc)
	case *ir.BitwiseInst:
		return w.writeBitwise(i, fc)
	case *ir.BranchInst:
		return w.writeBranch(i, fc)
	case *ir.BranchCondInst:
		return w.writeBranchCond(i, fc)
	case *ir.CallInst:
		return w.writeCall(i, fc)
	case *ir.ReturnInst:
		return w.writeReturn(i, fc)
	case *ir.ReturnVoidInst:
		w.buf.WriteByte(opReturnVoid)
		return nil
	default:
		return &UnsupportedOperandError{Instruction: "unknown instruction kind"}
	}
}

func (w *writer) writeAlloc(i *ir.AllocInst, fc *funcCtx) error {
	op := opAllocResult
	if i.Count != nil {
		op = opAllocCount
	}
	w.buf.WriteByte(op)
	if err := w.writeType(i.AllocType); err != nil {
		return err
	}
	if i.Count != nil {
		w.writeU32(*i.Count)
	}
	w.writeU16(fc.allocResult(i.Dest))
	return nil
}

func (w *writer) writeStore(i *ir.StoreInst, fc *funcCtx) error {
	valConst := i.Val.IsConst()
	hasIdx := i.Index != nil
	var op byte
	switch {
	case !valConst && !hasIdx:
		op = opStoreVal
	case valConst && !hasIdx:
		op = opStoreConst
	case !valConst && hasIdx:
		op = opStoreValIndex
	default:
		op = opStoreConstIndex
	}
	w.buf.WriteByte(op)
	if err := w.writeType(i.Val.Type()); err != nil {
		return err
	}
	if err := w.writeValueRef(i.Ptr, fc); err != nil {
		return err
	}
	if valConst {
		if err := w.writeConstant(i.Val); err != nil {
			return err
		}
	} else {
		if err := w.writeValueRef(i.Val, fc); err != nil {
			return err
		}
	}
	if hasIdx {
		w.writeU32(*i.Index)
	}
	return nil
}

func (w *writer) writeLoad(i *ir.LoadInst, fc *funcCtx) error {
	op := opLoadResult
	if i.Index != nil {
		op = opLoadResultIndex
	}
	w.buf.WriteByte(op)
	if err := w.writeType(i.Dest.Type()); err != nil {
		return err
	}
	if err := w.writeValueRef(i.Ptr, fc); err != nil {
		return err
	}
	id := fc.allocResult(i.Dest)
	w.writeU16(id)
	if i.Index != nil {
		w.writeU32(*i.Index)
	}
	return nil
}

type variantCodes struct {
	values, rhsConst, lhsConst byte
	hasLHSConst                bool
}

func selectVariant(lhsConst, rhsConst bool, v variantCodes) (byte, error) {
	switch {
	case !lhsConst && !rhsConst:
		return v.values, nil
	case !lhsConst && rhsConst:
		return v.rhsConst, nil
	case lhsConst && !rhsConst && v.hasLHSConst:
		return v.lhsConst, nil
	default:
		return 0, &UnsupportedOperandError{Instruction: "binary instruction"}
	}
}

func (w *writer) writeBinaryOperands(op byte, t ir.Type, lhs, rhs ir.Value, lhsConst bool, fc *funcCtx) error {
	w.buf.WriteByte(op)
	if err := w.writeType(t); err != nil {
		return err
	}
	if lhsConst {
		if err := w.writeConstant(lhs); err != nil {
			return err
		}
		return w.writeValueRef(rhs, fc)
	}
	if err := w.writeValueRef(lhs, fc); err != nil {
		return err
	}
	if rhs.IsConst() {
		return w.writeConstant(rhs)
	}
	return w.writeValueRef(rhs, fc)
}

func (w *writer) writeArith(i *ir.ArithInst, fc *funcCtx) error {
	var codes variantCodes
	switch i.Op {
	case ir.ArithAdd:
		codes = variantCodes{opAddValues, opAddRHSConst, 0, false}
	case ir.ArithSub:
		codes = variantCodes{opSubValues, opSubRHSConst, opSubLHSConst, true}
	case ir.ArithMul:
		codes = variantCodes{opMulValues, opMulRHSConst, 0, false}
	case ir.ArithDiv:
		codes = variantCodes{opDivValues, opDivRHSConst, opDivLHSConst, true}
	case ir.ArithRem:
		codes = variantCodes{opRemValues, opRemRHSConst, opRemLHSConst, true}
	default:
		return &UnsupportedOperandError{Instruction: "unknown arithmetic op"}
	}
	op, err := selectVariant(i.LHS.IsConst(), i.RHS.IsConst(), codes)
	if err != nil {
		return err
	}
	if err := w.writeBinaryOperands(op, i.LHS.Type(), i.LHS, i.RHS, i.LHS.IsConst(), fc); err != nil {
		return err
	}
	w.writeU16(fc.allocResult(i.Dest))
	return nil
}

func (w *writer) writeBitwise(i *ir.BitwiseInst, fc *funcCtx) error {
	var codes variantCodes
	switch i.Op {
	case ir.BitwiseAnd:
		codes = variantCodes{opAndValues, opAndRHSConst, opAndLHSConst, true}
	case ir.BitwiseOr:
		codes = variantCodes{opOrValues, opOrRHSConst, opOrLHSConst, true}
	case ir.BitwiseXor:
		codes = variantCodes{opXorValues, opXorRHSConst, opXorLHSConst, true}
	default:
		return &UnsupportedOperandError{Instruction: "unknown bitwise op"}
	}
	op, err := selectVariant(i.LHS.IsConst(), i.RHS.IsConst(), codes)
	if err != nil {
		return err
	}
	if err := w.writeBinaryOperands(op, i.LHS.Type(), i.LHS, i.RHS, i.LHS.IsConst(), fc); err != nil {
		return err
	}
	w.writeU16(fc.allocResult(i.Dest))
	return nil
}

func (w *writer) writeCmp(i *ir.CmpInst, fc *funcCtx) error {
	codes := variantCodes{opCmpValues, opCmpRHSConst, 0, false}
	op, err := selectVariant(i.LHS.IsConst(), i.RHS.IsConst(), codes)
	if err != nil {
		return err
	}
	w.buf.WriteByte(op)
	w.buf.WriteByte(byte(i.Op))
	if err := w.writeType(i.LHS.Type()); err != nil {
		return err
	}
	if err := w.writeValueRef(i.LHS, fc); err != nil {
		return err
	}
	if i.RHS.IsConst() {
		if err := w.writeConstant(i.RHS); err != nil {
			return err
		}
	} else if err := w.writeValueRef(i.RHS, fc); err != nil {
		return err
	}
	w.writeU16(fc.allocResult(i.Dest))
	return nil
}

func (w *writer) writeBranch(i *ir.BranchInst, fc *funcCtx) error {
	w.buf.WriteByte(opBranch)
	id, ok := fc.blocks[i.Target]
	if !ok {
		return &UnsupportedOperandError{Instruction: "branch to a block outside the function"}
	}
	w.writeU16(id)
	return nil
}

func (w *writer) writeBranchCond(i *ir.BranchCondInst, fc *funcCtx) error {
	if i.Cond.IsConst() {
		return &UnsupportedOperandError{Instruction: "branch.cond with a constant condition"}
	}
	w.buf.WriteByte(opBranchCond)
	if err := w.writeValueRef(i.Cond, fc); err != nil {
		return err
	}
	t, ok := fc.blocks[i.TrueTarget]
	if !ok {
		return &UnsupportedOperandError{Instruction: "branch.cond to a block outside the function"}
	}
	f, ok := fc.blocks[i.FalseTarget]
	if !ok {
		return &UnsupportedOperandError{Instruction: "branch.cond to a block outside the function"}
	}
	w.writeU16(t)
	w.writeU16(f)
	return nil
}

func (w *writer) writeCall(i *ir.CallInst, fc *funcCtx) error {
	op := opCallVoid
	if i.Dest != nil {
		op = opCallResult
	}
	w.buf.WriteByte(op)
	if i.Dest != nil {
		if err := w.writeType(i.Callee.ReturnType); err != nil {
			return err
		}
	}
	w.writeU16(uint16(len(i.Args)))
	for _, p := range i.Callee.Params {
		if err := w.writeType(p); err != nil {
			return err
		}
	}
	w.writeString(i.Callee.Name)
	for _, a := range i.Args {
		if a.IsConst() {
			w.buf.WriteByte(operandConstant)
			if err := w.writeConstant(a); err != nil {
				return err
			}
		} else {
			w.buf.WriteByte(operandValue)
			if err := w.writeValueRef(a, fc); err != nil {
				return err
			}
		}
	}
	if i.Dest != nil {
		w.writeU16(fc.allocResult(i.Dest))
	}
	return nil
}

func (w *writer) writeReturn(i *ir.ReturnInst, fc *funcCtx) error {
	if i.Val.IsConst() {
		return &UnsupportedOperandError{Instruction: "return with a constant operand"}
	}
	w.buf.WriteByte(opReturnVal)
	if err := w.writeType(i.Val.Type()); err != nil {
		return err
	}
	return w.writeValueRef(i.Val, fc)
}
