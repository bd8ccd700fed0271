package ast

import (
	"strings"

	"github.com/cwbudde/shard/internal/source"
)

// ExprStmt wraps an expression for its side effect. Expr may be nil, which
// represents an empty `;` statement.
type ExprStmt struct {
	Expr Expression
	Rng  source.Range
}

func NewExprStmt(expr Expression, rng source.Range) *ExprStmt {
	return &ExprStmt{Expr: expr, Rng: rng}
}

func (s *ExprStmt) stmtNode()          {}
func (s *ExprStmt) Range() source.Range { return s.Rng }
func (s *ExprStmt) String() string {
	if s.Expr == nil {
		return ";"
	}
	return s.Expr.String() + ";"
}

// DeclStmt wraps a declaration appearing in statement position.
type DeclStmt struct {
	Decl Decl
	Rng  source.Range
}

func NewDeclStmt(decl Decl, rng source.Range) (*DeclStmt, error) {
	if decl == nil {
		return nil, invariantf("DeclStmt", "decl must not be nil")
	}
	return &DeclStmt{Decl: decl, Rng: rng}, nil
}

func (s *DeclStmt) stmtNode()          {}
func (s *DeclStmt) Range() source.Range { return s.Rng }
func (s *DeclStmt) String() string      { return s.Decl.String() }

// CompoundStmt is an ordered list of statements, e.g. a `{ ... }` block.
type CompoundStmt struct {
	Stmts []Statement
	Rng   source.Range
}

func NewCompoundStmt(stmts []Statement, rng source.Range) *CompoundStmt {
	return &CompoundStmt{Stmts: stmts, Rng: rng}
}

func (s *CompoundStmt) stmtNode()          {}
func (s *CompoundStmt) Range() source.Range { return s.Rng }
func (s *CompoundStmt) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, st := range s.Stmts {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(st.String(), "\n", "\n  "))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// IfStmt is `if (Cond) Then [else Else]`. Cond and Then are required;
// Else is optional.
type IfStmt struct {
	Cond Expression
	Then Statement
	Else Statement
	Rng  source.Range
}

func NewIfStmt(cond Expression, then, els Statement, rng source.Range) (*IfStmt, error) {
	if cond == nil {
		return nil, invariantf("IfStmt", "condition must not be nil")
	}
	if then == nil {
		return nil, invariantf("IfStmt", "then-branch must not be nil")
	}
	return &IfStmt{Cond: cond, Then: then, Else: els, Rng: rng}, nil
}

func (s *IfStmt) stmtNode()          {}
func (s *IfStmt) Range() source.Range { return s.Rng }
func (s *IfStmt) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// WhileStmt is `while (Cond) Body`.
type WhileStmt struct {
	Cond Expression
	Body Statement
	Rng  source.Range
}

func NewWhileStmt(cond Expression, body Statement, rng source.Range) (*WhileStmt, error) {
	if cond == nil {
		return nil, invariantf("WhileStmt", "condition must not be nil")
	}
	if body == nil {
		return nil, invariantf("WhileStmt", "body must not be nil")
	}
	return &WhileStmt{Cond: cond, Body: body, Rng: rng}, nil
}

func (s *WhileStmt) stmtNode()          {}
func (s *WhileStmt) Range() source.Range { return s.Rng }
func (s *WhileStmt) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

// DoWhileStmt is `do Body while (Cond);`. Body is always a compound
// statement; a single non-compound statement body is not accepted.
type DoWhileStmt struct {
	Body *CompoundStmt
	Cond Expression
	Rng  source.Range
}

func NewDoWhileStmt(body *CompoundStmt, cond Expression, rng source.Range) (*DoWhileStmt, error) {
	if body == nil {
		return nil, invariantf("DoWhileStmt", "body must not be nil")
	}
	if cond == nil {
		return nil, invariantf("DoWhileStmt", "condition must not be nil")
	}
	return &DoWhileStmt{Body: body, Cond: cond, Rng: rng}, nil
}

func (s *DoWhileStmt) stmtNode()          {}
func (s *DoWhileStmt) Range() source.Range { return s.Rng }
func (s *DoWhileStmt) String() string {
	return "do " + s.Body.String() + " while (" + s.Cond.String() + ");"
}

// ForStmt is `for (Init; Cond; Inc) Body`. Init, Cond and Inc may each be
// nil (an omitted clause); Body is required.
type ForStmt struct {
	Init Statement
	Cond Expression
	Inc  Expression
	Body Statement
	Rng  source.Range
}

func NewForStmt(init Statement, cond, inc Expression, body Statement, rng source.Range) (*ForStmt, error) {
	if body == nil {
		return nil, invariantf("ForStmt", "body must not be nil")
	}
	return &ForStmt{Init: init, Cond: cond, Inc: inc, Body: body, Rng: rng}, nil
}

func (s *ForStmt) stmtNode()          {}
func (s *ForStmt) Range() source.Range { return s.Rng }
func (s *ForStmt) String() string {
	var sb strings.Builder
	sb.WriteString("for (")
	if s.Init != nil {
		sb.WriteString(s.Init.String())
	}
	sb.WriteString("; ")
	if s.Cond != nil {
		sb.WriteString(s.Cond.String())
	}
	sb.WriteString("; ")
	if s.Inc != nil {
		sb.WriteString(s.Inc.String())
	}
	sb.WriteString(") ")
	sb.WriteString(s.Body.String())
	return sb.String()
}

// SwitchStmt is `switch (Cond) Body`, where Body is a compound statement
// whose direct children are expected to be *CaseStmt and *DefaultStmt
// (not enforced structurally, matching the source grammar).
type SwitchStmt struct {
	Cond Expression
	Body *CompoundStmt
	Rng  source.Range
}

func NewSwitchStmt(cond Expression, body *CompoundStmt, rng source.Range) (*SwitchStmt, error) {
	if cond == nil {
		return nil, invariantf("SwitchStmt", "condition must not be nil")
	}
	if body == nil {
		return nil, invariantf("SwitchStmt", "body must not be nil")
	}
	return &SwitchStmt{Cond: cond, Body: body, Rng: rng}, nil
}

func (s *SwitchStmt) stmtNode()          {}
func (s *SwitchStmt) Range() source.Range { return s.Rng }
func (s *SwitchStmt) String() string {
	return "switch (" + s.Cond.String() + ") " + s.Body.String()
}

// CaseStmt is `case Expr: Stmts...`, owning its statement list directly
// rather than a single body statement.
type CaseStmt struct {
	Expr  Expression
	Stmts []Statement
	Rng   source.Range
}

func NewCaseStmt(expr Expression, stmts []Statement, rng source.Range) (*CaseStmt, error) {
	if expr == nil {
		return nil, invariantf("CaseStmt", "case expression must not be nil")
	}
	return &CaseStmt{Expr: expr, Stmts: stmts, Rng: rng}, nil
}

func (s *CaseStmt) stmtNode()          {}
func (s *CaseStmt) Range() source.Range { return s.Rng }
func (s *CaseStmt) String() string {
	var sb strings.Builder
	sb.WriteString("case ")
	sb.WriteString(s.Expr.String())
	sb.WriteString(":\n")
	for _, st := range s.Stmts {
		sb.WriteString("  ")
		sb.WriteString(st.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// DefaultStmt is `default: Stmts...`.
type DefaultStmt struct {
	Stmts []Statement
	Rng   source.Range
}

func NewDefaultStmt(stmts []Statement, rng source.Range) *DefaultStmt {
	return &DefaultStmt{Stmts: stmts, Rng: rng}
}

func (s *DefaultStmt) stmtNode()          {}
func (s *DefaultStmt) Range() source.Range { return s.Rng }
func (s *DefaultStmt) String() string {
	var sb strings.Builder
	sb.WriteString("default:\n")
	for _, st := range s.Stmts {
		sb.WriteString("  ")
		sb.WriteString(st.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ContinueStmt is `continue;`.
type ContinueStmt struct {
	Rng source.Range
}

func NewContinueStmt(rng source.Range) *ContinueStmt { return &ContinueStmt{Rng: rng} }

func (s *ContinueStmt) stmtNode()          {}
func (s *ContinueStmt) Range() source.Range { return s.Rng }
func (s *ContinueStmt) String() string      { return "continue;" }

// BreakStmt is `break;`.
type BreakStmt struct {
	Rng source.Range
}

func NewBreakStmt(rng source.Range) *BreakStmt { return &BreakStmt{Rng: rng} }

func (s *BreakStmt) stmtNode()          {}
func (s *BreakStmt) Range() source.Range { return s.Rng }
func (s *BreakStmt) String() string      { return "break;" }

// ReturnStmt is `return [Result];`. Result may be nil (a void return).
type ReturnStmt struct {
	Result Expression
	Rng    source.Range
}

func NewReturnStmt(result Expression, rng source.Range) *ReturnStmt {
	return &ReturnStmt{Result: result, Rng: rng}
}

func (s *ReturnStmt) stmtNode()          {}
func (s *ReturnStmt) Range() source.Range { return s.Rng }
func (s *ReturnStmt) String() string {
	if s.Result == nil {
		return "return;"
	}
	return "return " + s.Result.String() + ";"
}
