package ir

import "testing"

func testFunction(t *testing.T, params []Type, ret Type) (*Module, *Function) {
	t.Helper()
	m := NewModule("m")
	fn, err := m.CreateFunction("f", params, ret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, fn
}

func TestCreateAllocAndLoadStore(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()

	ptr, err := b.CreateAlloc(Int32Type, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(ptr.Type().(*PointerType).Pointee, Int32Type) {
		t.Fatalf("alloc pointee = %v, want Int32Type", ptr.Type())
	}

	c := &ConstInt32{Val: 5}
	if err := b.CreateStore(ptr, c, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := b.CreateLoad(ptr, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(loaded.Type(), Int32Type) {
		t.Errorf("load result type = %v, want Int32Type", loaded.Type())
	}
	if len(b.Instrs) != 3 {
		t.Fatalf("got %d instructions, want 3", len(b.Instrs))
	}
}

func TestCreateStoreRejectsTypeMismatch(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	ptr, _ := b.CreateAlloc(Int32Type, nil)
	if err := b.CreateStore(ptr, &ConstFloat32{Val: 1}, nil); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestCreateStoreRejectsNonPointer(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	if err := b.CreateStore(&ConstInt32{Val: 1}, &ConstInt32{Val: 2}, nil); err == nil {
		t.Fatalf("expected error storing through a non-pointer")
	}
}

func TestCreateLoadStoreWithStructIndex(t *testing.T) {
	m, fn := testFunction(t, nil, nil)
	st, err := m.CreateStructType([]Type{Int32Type, Float64Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := fn.CreateBlock()
	ptr, err := b.CreateAlloc(st, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx0 := uint32(0)
	if err := b.CreateStore(ptr, &ConstInt32{Val: 1}, &idx0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx1 := uint32(1)
	loaded, err := b.CreateLoad(ptr, &idx1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(loaded.Type(), Float64Type) {
		t.Errorf("field 1 load type = %v, want Float64Type", loaded.Type())
	}

	idxOOB := uint32(5)
	if _, err := b.CreateLoad(ptr, &idxOOB); err == nil {
		t.Fatalf("expected out-of-range error")
	}
}

func TestCreateArithRejectsTypeMismatch(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	_, err := b.CreateArith(ArithAdd, &ConstInt32{Val: 1}, &ConstFloat32{Val: 1})
	if err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestCreateArithProducesSameType(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	dest, err := b.CreateArith(ArithAdd, &ConstInt32{Val: 2}, &ConstInt32{Val: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(dest.Type(), Int32Type) {
		t.Errorf("result type = %v, want Int32Type", dest.Type())
	}
}

func TestCreateCmpProducesInt1(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	dest, err := b.CreateCmp(CmpLT, &ConstInt32{Val: 2}, &ConstInt32{Val: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest.Type().Kind() != KindInt1 {
		t.Errorf("cmp result kind = %v, want KindInt1", dest.Type().Kind())
	}
}

func TestCreateBitwiseRejectsFloat(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	if _, err := b.CreateBitwise(BitwiseAnd, &ConstFloat32{Val: 1}, &ConstFloat32{Val: 2}); err == nil {
		t.Fatalf("expected error for bitwise op on float operands")
	}
}

func TestCreateBranchRejectsForeignBlock(t *testing.T) {
	_, fn1 := testFunction(t, nil, nil)
	_, fn2 := testFunction(t, nil, nil)
	b1 := fn1.CreateBlock()
	b2 := fn2.CreateBlock()
	if err := b1.CreateBranch(b2); err == nil {
		t.Fatalf("expected error branching to a block of another function")
	}
}

func TestCreateBranchCondRequiresInt1(t *testing.T) {
	_, fn := testFunction(t, nil, nil)
	b := fn.CreateBlock()
	t1 := fn.CreateBlock()
	t2 := fn.CreateBlock()
	if err := b.CreateBranchCond(&ConstInt32{Val: 1}, t1, t2); err == nil {
		t.Fatalf("expected error for non-i1 condition")
	}
	cond, _ := b.CreateCmp(CmpEQ, &ConstInt32{Val: 1}, &ConstInt32{Val: 1})
	if err := b.CreateBranchCond(cond, t1, t2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateCallChecksArgTypesAndCount(t *testing.T) {
	m := NewModule("m")
	callee, err := m.CreateFunction("add", []Type{Int32Type, Int32Type}, Int32Type)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	caller, err := m.CreateFunction("main", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := caller.CreateBlock()

	if _, err := b.CreateCall(callee, []Value{&ConstInt32{Val: 1}}); err == nil {
		t.Fatalf("expected error for wrong argument count")
	}
	if _, err := b.CreateCall(callee, []Value{&ConstInt32{Val: 1}, &ConstFloat32{Val: 2}}); err == nil {
		t.Fatalf("expected error for wrong argument type")
	}

	dest, err := b.CreateCall(callee, []Value{&ConstInt32{Val: 1}, &ConstInt32{Val: 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest == nil || !Equal(dest.Type(), Int32Type) {
		t.Errorf("call result = %v, want Int32Type value", dest)
	}
}

func TestCreateCallVoidHasNilResult(t *testing.T) {
	m := NewModule("m")
	callee, _ := m.CreateFunction("proc", nil, nil)
	caller, _ := m.CreateFunction("main", nil, nil)
	b := caller.CreateBlock()
	dest, err := b.CreateCall(callee, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest != nil {
		t.Errorf("void call result = %v, want nil", dest)
	}
}

func TestCreateReturnMatchesFunctionType(t *testing.T) {
	_, fn := testFunction(t, nil, Int32Type)
	b := fn.CreateBlock()
	if err := b.CreateReturn(&ConstFloat32{Val: 1}); err == nil {
		t.Fatalf("expected type mismatch error")
	}
	if err := b.CreateReturn(&ConstInt32{Val: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateReturnVoidRequiresNoReturnType(t *testing.T) {
	_, fn := testFunction(t, nil, Int32Type)
	b := fn.CreateBlock()
	if err := b.CreateReturnVoid(); err == nil {
		t.Fatalf("expected error calling ReturnVoid on a function with a return type")
	}

	_, fn2 := testFunction(t, nil, nil)
	b2 := fn2.CreateBlock()
	if err := b2.CreateReturnVoid(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
