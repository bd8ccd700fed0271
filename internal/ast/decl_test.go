package ast

import (
	"testing"

	"github.com/cwbudde/shard/internal/source"
)

func TestNewVarDeclRejectsEmptyName(t *testing.T) {
	if _, err := NewVarDecl(Int, "", nil, source.Range{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestVarDeclString(t *testing.T) {
	d, err := NewVarDecl(Int, "x", NewIntLiteral(5, source.Range{}), source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.String(), "int x = 5;"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if d.DeclName() != "x" {
		t.Errorf("DeclName() = %q, want %q", d.DeclName(), "x")
	}
}

func TestNewFuncDeclRequiresNameAndBody(t *testing.T) {
	body := NewCompoundStmt(nil, source.Range{})
	if _, err := NewFuncDecl(Void, "", nil, body, source.Range{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := NewFuncDecl(Void, "f", nil, nil, source.Range{}); err == nil {
		t.Fatalf("expected error for nil body")
	}
}

func TestFuncDeclString(t *testing.T) {
	p, _ := NewVarDecl(Int, "a", nil, source.Range{})
	body := NewCompoundStmt(nil, source.Range{})
	fn, err := NewFuncDecl(Int, "identity", []*VarDecl{p}, body, source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := fn.String(), "int identity(int a) {\n}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewCompoundDeclRejectsEmptyName(t *testing.T) {
	if _, err := NewCompoundDecl("", nil, source.Range{}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestSourceStringJoinsStatements(t *testing.T) {
	s1 := NewExprStmt(nil, source.Range{})
	src := NewSource([]Statement{s1, s1}, source.Range{})
	if got, want := src.String(), ";\n;\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
