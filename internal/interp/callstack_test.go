package interp

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/shard/internal/ir"
)

// TestRuntimeErrorCarriesCallStack builds a two-level call chain where the
// innermost function divides by zero, and checks the resulting error
// reports both frames.
func TestRuntimeErrorCarriesCallStack(t *testing.T) {
	m := ir.NewModule("m")

	divBy, err := m.CreateFunction("divBy", []ir.Type{ir.Int32Type, ir.Int32Type}, ir.Int32Type)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	db := divBy.CreateBlock()
	q, err := db.CreateArith(ir.ArithDiv, divBy.Arg(0), divBy.Arg(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := db.CreateReturn(q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	caller, err := m.CreateFunction("caller", []ir.Type{ir.Int32Type}, ir.Int32Type)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cb := caller.CreateBlock()
	zero := m.CreateConstant(&ir.ConstInt32{Val: 0})
	r, err := cb.CreateCall(divBy, []ir.Value{caller.Arg(0), zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cb.CreateReturn(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	it := New()
	it.Load(m)
	_, err = it.Call("caller", []Value{Int32{10}})

	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("error = %v (%T), want *RuntimeError", err, err)
	}
	if rtErr.Stack.Depth() != 2 {
		t.Fatalf("stack depth = %d, want 2", rtErr.Stack.Depth())
	}
	top, ok := rtErr.Stack.Top()
	if !ok || top.FunctionName != "divBy" {
		t.Fatalf("stack top = %+v, want divBy", top)
	}

	rendered := rtErr.Error()
	if !strings.Contains(rendered, "divBy") || !strings.Contains(rendered, "caller") {
		t.Errorf("Error() = %q, want both frame names", rendered)
	}
}
