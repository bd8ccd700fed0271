package ast

import "testing"

func TestTypeRefEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b TypeRef
		want bool
	}{
		{"same builtin", Int, Int, true},
		{"different builtin", Int, Float, false},
		{"same typename", NewTypename("Point"), NewTypename("Point"), true},
		{"different typename", NewTypename("Point"), NewTypename("Vector"), false},
		{"builtin vs typename", Int, NewTypename("Int"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeRefString(t *testing.T) {
	if got := Int.String(); got != "int" {
		t.Errorf("String() = %q, want %q", got, "int")
	}
	if got := NewTypename("Widget").String(); got != "Widget" {
		t.Errorf("String() = %q, want %q", got, "Widget")
	}
}
