package ir

import "testing"

func TestEqualPrimitives(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same kind", Int32Type, Int32Type, true},
		{"different kind", Int32Type, Int64Type, false},
		{"int vs float", Int32Type, Float32Type, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualStructIdentity(t *testing.T) {
	m := NewModule("m")
	s1, err := m.CreateStructType([]Type{Int32Type, Int32Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := m.CreateStructType([]Type{Int32Type, Int32Type})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Equal(s1, s2) {
		t.Errorf("two distinct struct types with identical fields must not be Equal")
	}
	if !Equal(s1, s1) {
		t.Errorf("a struct type must be Equal to itself")
	}
}

func TestCreateStructTypeRejectsEmpty(t *testing.T) {
	m := NewModule("m")
	if _, err := m.CreateStructType(nil); err == nil {
		t.Fatalf("expected error for empty struct type")
	}
}

func TestPointerTypeString(t *testing.T) {
	p := &PointerType{Pointee: Int32Type}
	if got, want := p.String(), "i32*"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTypeKindHelpers(t *testing.T) {
	if !KindInt32.IsInteger() {
		t.Errorf("KindInt32.IsInteger() = false, want true")
	}
	if KindFloat64.IsInteger() {
		t.Errorf("KindFloat64.IsInteger() = true, want false")
	}
	if !KindFloat64.IsFloat() {
		t.Errorf("KindFloat64.IsFloat() = false, want true")
	}
}
