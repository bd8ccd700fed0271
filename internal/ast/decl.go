package ast

import (
	"strings"

	"github.com/cwbudde/shard/internal/source"
)

// VarDecl declares a single variable: its type, name, and optional
// initializer expression.
type VarDecl struct {
	Type TypeRef
	Name string
	Init Expression // nil when uninitialized
	Rng  source.Range
}

func NewVarDecl(typ TypeRef, name string, init Expression, rng source.Range) (*VarDecl, error) {
	if name == "" {
		return nil, invariantf("VarDecl", "name must not be empty")
	}
	return &VarDecl{Type: typ, Name: name, Init: init, Rng: rng}, nil
}

func (d *VarDecl) declNode()           {}
func (d *VarDecl) DeclName() string    { return d.Name }
func (d *VarDecl) Range() source.Range { return d.Rng }
func (d *VarDecl) String() string {
	out := d.Type.String() + " " + d.Name
	if d.Init != nil {
		out += " = " + d.Init.String()
	}
	return out + ";"
}

// FuncDecl declares a function: its return type, name, parameter list and
// body. ReturnType is Void for procedures.
type FuncDecl struct {
	ReturnType TypeRef
	Name       string
	Params     []*VarDecl
	Body       *CompoundStmt
	Rng        source.Range
}

func NewFuncDecl(returnType TypeRef, name string, params []*VarDecl, body *CompoundStmt, rng source.Range) (*FuncDecl, error) {
	if name == "" {
		return nil, invariantf("FuncDecl", "name must not be empty")
	}
	if body == nil {
		return nil, invariantf("FuncDecl", "body must not be nil")
	}
	return &FuncDecl{ReturnType: returnType, Name: name, Params: params, Body: body, Rng: rng}, nil
}

func (d *FuncDecl) declNode()           {}
func (d *FuncDecl) DeclName() string    { return d.Name }
func (d *FuncDecl) Range() source.Range { return d.Rng }
func (d *FuncDecl) String() string {
	var sb strings.Builder
	sb.WriteString(d.ReturnType.String())
	sb.WriteString(" ")
	sb.WriteString(d.Name)
	sb.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Type.String())
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	sb.WriteString(") ")
	sb.WriteString(d.Body.String())
	return sb.String()
}

// CompoundDecl declares a class-like aggregate: a name and an ordered list
// of member declarations.
type CompoundDecl struct {
	Name  string
	Decls []Decl
	Rng   source.Range
}

func NewCompoundDecl(name string, decls []Decl, rng source.Range) (*CompoundDecl, error) {
	if name == "" {
		return nil, invariantf("CompoundDecl", "name must not be empty")
	}
	return &CompoundDecl{Name: name, Decls: decls, Rng: rng}, nil
}

func (d *CompoundDecl) declNode()           {}
func (d *CompoundDecl) DeclName() string    { return d.Name }
func (d *CompoundDecl) Range() source.Range { return d.Rng }
func (d *CompoundDecl) String() string {
	var sb strings.Builder
	sb.WriteString("class ")
	sb.WriteString(d.Name)
	sb.WriteString(" {\n")
	for _, m := range d.Decls {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(m.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Source is the root of the AST: an ordered list of top-level statements.
// It owns the entire tree; nothing outside Source holds a reference into
// it.
type Source struct {
	Statements []Statement
	Rng        source.Range
}

func NewSource(statements []Statement, rng source.Range) *Source {
	return &Source{Statements: statements, Rng: rng}
}

func (s *Source) Range() source.Range { return s.Rng }
func (s *Source) String() string {
	var sb strings.Builder
	for _, stmt := range s.Statements {
		sb.WriteString(stmt.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
