package ircodec

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/shard/internal/ir"
)

// Decode deserializes data produced by Encode back into an ir.Module.
func Decode(data []byte) (*ir.Module, error) {
	r := &reader{data: data}

	var gotMagic [4]byte
	copy(gotMagic[:], r.take(4))
	if r.err != nil {
		return nil, r.err
	}
	if gotMagic != magic {
		return nil, &InvalidFormatError{Got: gotMagic}
	}

	major := r.byte_()
	minor := r.byte_()
	if r.err != nil {
		return nil, r.err
	}
	if major != versionMajor || minor != versionMinor {
		return nil, &UnsupportedVersionError{Major: major, Minor: minor}
	}

	m := ir.NewModule("")

	structCount := r.u16()
	if r.err != nil {
		return nil, r.err
	}
	placeholders := make([]*ir.StructType, structCount)
	for i := range placeholders {
		placeholders[i] = &ir.StructType{}
	}
	r.structs = placeholders
	for i := 0; i < int(structCount); i++ {
		fieldCount := r.u16()
		fields := make([]ir.Type, fieldCount)
		for j := range fields {
			fields[j] = r.readType()
		}
		if r.err != nil {
			return nil, r.err
		}
		placeholders[i].Fields = fields
	}
	m.Structs = placeholders

	fnCount := r.u16()
	if r.err != nil {
		return nil, r.err
	}
	for i := 0; i < int(fnCount); i++ {
		if err := r.readFunction(m); err != nil {
			return nil, err
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// reader walks a byte slice left to right, recording the first error it
// encounters so call sites can chain reads without checking err after
// every call.
type reader struct {
	data    []byte
	pos     int
	err     error
	structs []*ir.StructType
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.pos+n > len(r.data) {
		r.fail(&TruncatedError{Offset: r.pos, Want: n})
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) byte_() byte {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *reader) u16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) u64() uint64 {
	b := r.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (r *reader) string_() string {
	n := r.u16()
	b := r.take(int(n))
	if b == nil {
		return ""
	}
	return string(b)
}

func (r *reader) readType() ir.Type {
	if r.err != nil {
		return nil
	}
	tag := r.byte_()
	switch tag {
	case tagVoid:
		return nil
	case tagInt1:
		return ir.Int1Type
	case tagInt8:
		return ir.Int8Type
	case tagInt16:
		return ir.Int16Type
	case tagInt32:
		return ir.Int32Type
	case tagInt64:
		return ir.Int64Type
	case tagFloat32:
		return ir.Float32Type
	case tagFloat64:
		return ir.Float64Type
	case tagPointer:
		pointee := r.readType()
		return &ir.PointerType{Pointee: pointee}
	case tagStruct:
		idx := r.u16()
		if int(idx) >= len(r.structs) {
			r.fail(&MalformedError{Offset: r.pos, Message: "struct table index out of range"})
			return nil
		}
		return r.structs[idx]
	default:
		r.fail(&MalformedError{Offset: r.pos, Message: "unknown type tag"})
		return nil
	}
}

func (r *reader) readConstant(t ir.Type) ir.Value {
	if r.err != nil || t == nil {
		return nil
	}
	switch t.Kind() {
	case ir.KindInt1:
		return &ir.ConstInt1{Val: r.byte_() != 0}
	case ir.KindInt8:
		return &ir.ConstInt8{Val: int8(r.byte_())}
	case ir.KindInt16:
		return &ir.ConstInt16{Val: int16(r.u16())}
	case ir.KindInt32:
		return &ir.ConstInt32{Val: int32(r.u32())}
	case ir.KindInt64:
		return &ir.ConstInt64{Val: int64(r.u64())}
	case ir.KindFloat32:
		return &ir.ConstFloat32{Val: math.Float32frombits(r.u32())}
	case ir.KindFloat64:
		return &ir.ConstFloat64{Val: math.Float64frombits(r.u64())}
	default:
		r.fail(&MalformedError{Offset: r.pos, Message: "constant operand with non-primitive type"})
		return nil
	}
}

// funcReadCtx resolves function-local value and block ids to the objects
// created while decoding a single function.
type funcReadCtx struct {
	values []ir.Value
	blocks []*ir.Block
}

func (f *funcReadCtx) value(id uint16) ir.Value {
	if int(id) >= len(f.values) {
		return nil
	}
	return f.values[id]
}

func (f *funcReadCtx) block(id uint16) *ir.Block {
	if int(id) >= len(f.blocks) {
		return nil
	}
	return f.blocks[id]
}

func (r *reader) readFunction(m *ir.Module) error {
	name := r.string_()
	retType := r.readType()
	paramCount := r.u16()
	params := make([]ir.Type, paramCount)
	for i := range params {
		params[i] = r.readType()
	}
	if r.err != nil {
		return r.err
	}

	fn, err := m.CreateFunction(name, params, retType)
	if err != nil {
		return err
	}

	fc := &funcReadCtx{}
	for _, a := range fn.Args {
		fc.values = append(fc.values, a)
	}

	blockCount := r.u16()
	if r.err != nil {
		return r.err
	}
	for i := 0; i < int(blockCount); i++ {
		fc.blocks = append(fc.blocks, fn.CreateBlock())
	}

	for i := 0; i < int(blockCount); i++ {
		if err := r.readBlock(fc.blocks[i], fc); err != nil {
			return err
		}
	}
	return r.err
}

func (r *reader) valueRef(fc *funcReadCtx) ir.Value {
	id := r.u16()
	if r.err != nil {
		return nil
	}
	v := fc.value(id)
	if v == nil {
		r.fail(&MalformedError{Offset: r.pos, Message: "unresolved value id"})
	}
	return v
}

func (r *reader) blockRef(fc *funcReadCtx) *ir.Block {
	id := r.u16()
	if r.err != nil {
		return nil
	}
	b := fc.block(id)
	if b == nil {
		r.fail(&MalformedError{Offset: r.pos, Message: "unresolved block id"})
	}
	return b
}

func (r *reader) readBlock(b *ir.Block, fc *funcReadCtx) error {
	instrCount := r.u16()
	if r.err != nil {
		return r.err
	}
	for i := 0; i < int(instrCount); i++ {
		if err := r.readInstruction(b, fc); err != nil {
			return err
		}
	}
	return nil
}

func (r *reader) readInstruction(b *ir.Block, fc *funcReadCtx) error {
	op := r.byte_()
	if r.err != nil {
		return r.err
	}
	switch op {
	case opAllocResult, opAllocCount:
		allocType := r.readType()
		var count *uint32
		if op == opAllocCount {
			c := r.u32()
			count = &c
		}
		if r.err != nil {
			return r.err
		}
		resultID := r.u16()
		dest := ir.NewVirtualValue(&ir.PointerType{Pointee: allocType})
		b.Instrs = append(b.Instrs, &ir.AllocInst{AllocType: allocType, Count: count, Dest: dest})
		fc.values = append(fc.values, dest)
		_ = resultID
		return r.err

	case opStoreVal, opStoreConst, opStoreValIndex, opStoreConstIndex:
		valType := r.readType()
		ptr := r.valueRef(fc)
		var val ir.Value
		if op == opStoreConst || op == opStoreConstIndex {
			val = r.readConstant(valType)
		} else {
			val = r.valueRef(fc)
		}
		var index *uint32
		if op == opStoreValIndex || op == opStoreConstIndex {
			idx := r.u32()
			index = &idx
		}
		if r.err != nil {
			return r.err
		}
		b.Instrs = append(b.Instrs, &ir.StoreInst{Ptr: ptr, Val: val, Index: index})
		return nil

	case opLoadResult, opLoadResultIndex:
		loadType := r.readType()
		ptr := r.valueRef(fc)
		resultID := r.u16()
		var index *uint32
		if op == opLoadResultIndex {
			idx := r.u32()
			index = &idx
		}
		if r.err != nil {
			return r.err
		}
		dest := ir.NewVirtualValue(loadType)
		b.Instrs = append(b.Instrs, &ir.LoadInst{Ptr: ptr, Index: index, Dest: dest})
		fc.values = append(fc.values, dest)
		_ = resultID
		return nil

	case opAddValues, opAddRHSConst:
		return r.readArith(b, fc, op, ir.ArithAdd)
	case opSubValues, opSubRHSConst, opSubLHSConst:
		return r.readArith(b, fc, op, ir.ArithSub)
	case opMulValues, opMulRHSConst:
		return r.readArith(b, fc, op, ir.ArithMul)
	case opDivValues, opDivRHSConst, opDivLHSConst:
		return r.readArith(b, fc, op, ir.ArithDiv)
	case opRemValues, opRemRHSConst, opRemLHSConst:
		return r.readArith(b, fc, op, ir.ArithRem)

	case opAndValues, opAndRHSConst, opAndLHSConst:
		return r.readBitwise(b, fc, op, ir.BitwiseAnd)
	case opOrValues, opOrRHSConst, opOrLHSConst:
		return r.readBitwise(b, fc, op, ir.BitwiseOr)
	case opXorValues, opXorRHSConst, opXorLHSConst:
		return r.readBitwise(b, fc, op, ir.BitwiseXor)

	case opCmpValues, opCmpRHSConst:
		cmpOp := ir.CmpOp(r.byte_())
		t := r.readType()
		lhs := r.valueRef(fc)
		var rhs ir.Value
		if op == opCmpRHSConst {
			rhs = r.readConstant(t)
		} else {
			rhs = r.valueRef(fc)
		}
		resultID := r.u16()
		if r.err != nil {
			return r.err
		}
		dest := ir.NewVirtualValue(ir.Int1Type)
		b.Instrs = append(b.Instrs, &ir.CmpInst{Op: cmpOp, LHS: lhs, RHS: rhs, Dest: dest})
		fc.values = append(fc.values, dest)
		_ = resultID
		return nil

	case opBranch:
		target := r.blockRef(fc)
		if r.err != nil {
			return r.err
		}
		b.Instrs = append(b.Instrs, &ir.BranchInst{Target: target})
		return nil

	case opBranchCond:
		cond := r.valueRef(fc)
		trueTarget := r.blockRef(fc)
		falseTarget := r.blockRef(fc)
		if r.err != nil {
			return r.err
		}
		b.Instrs = append(b.Instrs, &ir.BranchCondInst{Cond: cond, TrueTarget: trueTarget, FalseTarget: falseTarget})
		return nil

	case opCallVoid, opCallResult:
		return r.readCall(b, fc, op)

	case opReturnVal:
		t := r.readType()
		val := r.valueRef(fc)
		if r.err != nil {
			return r.err
		}
		_ = t
		b.Instrs = append(b.Instrs, &ir.ReturnInst{Val: val})
		return nil

	case opReturnVoid:
		b.Instrs = append(b.Instrs, &ir.ReturnVoidInst{})
		return nil

	default:
		return &MalformedError{Offset: r.pos - 1, Message: "unknown opcode"}
	}
}

func (r *reader) readArith(b *ir.Block, fc *funcReadCtx, op byte, arithOp ir.ArithOp) error {
	lhs, rhs, t, resultID, err := r.readBinaryOperands(fc, op)
	if err != nil {
		return err
	}
	dest := ir.NewVirtualValue(t)
	b.Instrs = append(b.Instrs, &ir.ArithInst{Op: arithOp, LHS: lhs, RHS: rhs, Dest: dest})
	fc.values = append(fc.values, dest)
	_ = resultID
	return nil
}

func (r *reader) readBitwise(b *ir.Block, fc *funcReadCtx, op byte, bitOp ir.BitwiseOp) error {
	lhs, rhs, t, resultID, err := r.readBinaryOperands(fc, op)
	if err != nil {
		return err
	}
	dest := ir.NewVirtualValue(t)
	b.Instrs = append(b.Instrs, &ir.BitwiseInst{Op: bitOp, LHS: lhs, RHS: rhs, Dest: dest})
	fc.values = append(fc.values, dest)
	_ = resultID
	return nil
}

// readBinaryOperands reads the common "type, lhs, rhs, result id" shape
// shared by Add/Sub/Mul/Div/Rem/And/Or/Xor, classifying op by its family
// position to know whether lhs or rhs is an inlined constant.
func (r *reader) readBinaryOperands(fc *funcReadCtx, op byte) (ir.Value, ir.Value, ir.Type, uint16, error) {
	lhsIsConst := isLHSConstOpcode(op)
	rhsIsConst := isRHSConstOpcode(op)

	t := r.readType()
	var lhs, rhs ir.Value
	if lhsIsConst {
		lhs = r.readConstant(t)
		rhs = r.valueRef(fc)
	} else {
		lhs = r.valueRef(fc)
		if rhsIsConst {
			rhs = r.readConstant(t)
		} else {
			rhs = r.valueRef(fc)
		}
	}
	resultID := r.u16()
	if r.err != nil {
		return nil, nil, nil, 0, r.err
	}
	return lhs, rhs, t, resultID, nil
}

// isRHSConstOpcode and isLHSConstOpcode classify a binary-instruction
// opcode by listing each family's variant codes. Every family follows the
// same layout: the all-values variant starts the family's run (…0), the
// rhs-constant variant is the next code (…1), and where present the
// lhs-constant variant is the one after that (…2).
func isRHSConstOpcode(op byte) bool {
	switch op {
	case opAddRHSConst, opSubRHSConst, opMulRHSConst, opDivRHSConst, opRemRHSConst,
		opAndRHSConst, opOrRHSConst, opXorRHSConst:
		return true
	default:
		return false
	}
}

func isLHSConstOpcode(op byte) bool {
	switch op {
	case opSubLHSConst, opDivLHSConst, opRemLHSConst, opAndLHSConst, opOrLHSConst, opXorLHSConst:
		return true
	default:
		return false
	}
}

func (r *reader) readCall(b *ir.Block, fc *funcReadCtx, op byte) error {
	var retType ir.Type
	if op == opCallResult {
		retType = r.readType()
	}
	argCount := r.u16()
	argTypes := make([]ir.Type, argCount)
	for i := range argTypes {
		argTypes[i] = r.readType()
	}
	name := r.string_()
	if r.err != nil {
		return r.err
	}

	args := make([]ir.Value, argCount)
	for i := range args {
		tag := r.byte_()
		if tag == operandConstant {
			args[i] = r.readConstant(argTypes[i])
		} else {
			args[i] = r.valueRef(fc)
		}
	}
	if r.err != nil {
		return r.err
	}

	callee := b.Fn.Mod.FindFunction(name)
	if callee == nil {
		return &MalformedError{Offset: r.pos, Message: "call to unknown function " + name}
	}

	var dest *ir.VirtualValue
	if op == opCallResult {
		resultID := r.u16()
		if r.err != nil {
			return r.err
		}
		dest = ir.NewVirtualValue(retType)
		fc.values = append(fc.values, dest)
		_ = resultID
	}
	b.Instrs = append(b.Instrs, &ir.CallInst{Callee: callee, Args: args, Dest: dest})
	return nil
}
