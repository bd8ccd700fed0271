package ast

import (
	"strconv"
	"strings"

	"github.com/cwbudde/shard/internal/source"
)

// BinaryOp enumerates the binary operators the grammar recognizes,
// comparisons, arithmetic and the compound-assignment family.
type BinaryOp int

const (
	OpEQ BinaryOp = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRem
	OpAssign
	OpMulAssign
	OpDivAssign
	OpRemAssign
	OpAddAssign
	OpSubAssign
)

var binaryOpText = map[BinaryOp]string{
	OpEQ: "==", OpNE: "!=", OpLT: "<", OpLE: "<=", OpGT: ">", OpGE: ">=",
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpRem: "%",
	OpAssign: "=", OpMulAssign: "*=", OpDivAssign: "/=", OpRemAssign: "%=",
	OpAddAssign: "+=", OpSubAssign: "-=",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpText[op]; ok {
		return s
	}
	return "?"
}

// UnaryOp enumerates the prefix and postfix unary operators.
type UnaryOp int

const (
	OpPostInc UnaryOp = iota
	OpPostDec
	OpPreInc
	OpPreDec
	OpPlus
	OpMinus
	OpNot
)

var unaryOpText = map[UnaryOp]string{
	OpPostInc: "++", OpPostDec: "--", OpPreInc: "++", OpPreDec: "--",
	OpPlus: "+", OpMinus: "-", OpNot: "!",
}

func (op UnaryOp) String() string {
	if s, ok := unaryOpText[op]; ok {
		return s
	}
	return "?"
}

// IsPostfix reports whether op is applied after its operand (x++) rather
// than before it (++x).
func (op UnaryOp) IsPostfix() bool {
	return op == OpPostInc || op == OpPostDec
}

// Identifier names a variable, function or type in an expression position.
type Identifier struct {
	Name string
	Rng  source.Range
}

// NewIdentifier rejects an empty name per the data-model invariant.
func NewIdentifier(name string, rng source.Range) (*Identifier, error) {
	if name == "" {
		return nil, invariantf("Identifier", "name must not be empty")
	}
	return &Identifier{Name: name, Rng: rng}, nil
}

func (i *Identifier) exprNode()          {}
func (i *Identifier) Range() source.Range { return i.Rng }
func (i *Identifier) String() string      { return i.Name }

// IntLiteral is an integer literal expression.
type IntLiteral struct {
	Value int64
	Rng   source.Range
}

func NewIntLiteral(value int64, rng source.Range) *IntLiteral {
	return &IntLiteral{Value: value, Rng: rng}
}

func (l *IntLiteral) exprNode()           {}
func (l *IntLiteral) Range() source.Range { return l.Rng }
func (l *IntLiteral) String() string      { return strconv.FormatInt(l.Value, 10) }

// FloatLiteral is a floating-point literal expression.
type FloatLiteral struct {
	Value float64
	Rng   source.Range
}

func NewFloatLiteral(value float64, rng source.Range) *FloatLiteral {
	return &FloatLiteral{Value: value, Rng: rng}
}

func (l *FloatLiteral) exprNode()           {}
func (l *FloatLiteral) Range() source.Range { return l.Rng }
func (l *FloatLiteral) String() string      { return strconv.FormatFloat(l.Value, 'g', -1, 64) }

// BoolLiteral is a boolean literal expression.
type BoolLiteral struct {
	Value bool
	Rng   source.Range
}

func NewBoolLiteral(value bool, rng source.Range) *BoolLiteral {
	return &BoolLiteral{Value: value, Rng: rng}
}

func (l *BoolLiteral) exprNode()           {}
func (l *BoolLiteral) Range() source.Range { return l.Rng }
func (l *BoolLiteral) String() string      { return strconv.FormatBool(l.Value) }

// CharLiteral is a single-character literal expression.
type CharLiteral struct {
	Value rune
	Rng   source.Range
}

func NewCharLiteral(value rune, rng source.Range) *CharLiteral {
	return &CharLiteral{Value: value, Rng: rng}
}

func (l *CharLiteral) exprNode()           {}
func (l *CharLiteral) Range() source.Range { return l.Rng }
func (l *CharLiteral) String() string      { return "'" + string(l.Value) + "'" }

// StringLiteral is a string literal expression.
type StringLiteral struct {
	Value string
	Rng   source.Range
}

func NewStringLiteral(value string, rng source.Range) *StringLiteral {
	return &StringLiteral{Value: value, Rng: rng}
}

func (l *StringLiteral) exprNode()           {}
func (l *StringLiteral) Range() source.Range { return l.Rng }
func (l *StringLiteral) String() string      { return strconv.Quote(l.Value) }

// NullLiteral is the literal `null`.
type NullLiteral struct {
	Rng source.Range
}

func NewNullLiteral(rng source.Range) *NullLiteral {
	return &NullLiteral{Rng: rng}
}

func (l *NullLiteral) exprNode()           {}
func (l *NullLiteral) Range() source.Range { return l.Rng }
func (l *NullLiteral) String() string      { return "null" }

// ParenExpr is an expression wrapped in parentheses. Inner must be non-nil.
type ParenExpr struct {
	Inner Expression
	Rng   source.Range
}

func NewParenExpr(inner Expression, rng source.Range) (*ParenExpr, error) {
	if inner == nil {
		return nil, invariantf("ParenExpr", "inner expression must not be nil")
	}
	return &ParenExpr{Inner: inner, Rng: rng}, nil
}

func (p *ParenExpr) exprNode()           {}
func (p *ParenExpr) Range() source.Range { return p.Rng }
func (p *ParenExpr) String() string      { return "(" + p.Inner.String() + ")" }

// BinaryExpr applies a BinaryOp to two operands.
type BinaryExpr struct {
	Op  BinaryOp
	LHS Expression
	RHS Expression
	Rng source.Range
}

func NewBinaryExpr(op BinaryOp, lhs, rhs Expression, rng source.Range) (*BinaryExpr, error) {
	if lhs == nil || rhs == nil {
		return nil, invariantf("BinaryExpr", "both operands must be non-nil")
	}
	return &BinaryExpr{Op: op, LHS: lhs, RHS: rhs, Rng: rng}, nil
}

func (b *BinaryExpr) exprNode()           {}
func (b *BinaryExpr) Range() source.Range { return b.Rng }
func (b *BinaryExpr) String() string {
	return "(" + b.LHS.String() + " " + b.Op.String() + " " + b.RHS.String() + ")"
}

// UnaryExpr applies a UnaryOp to a single operand, either as a prefix or a
// postfix operator.
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expression
	Rng     source.Range
}

func NewUnaryExpr(op UnaryOp, operand Expression, rng source.Range) (*UnaryExpr, error) {
	if operand == nil {
		return nil, invariantf("UnaryExpr", "operand must not be nil")
	}
	return &UnaryExpr{Op: op, Operand: operand, Rng: rng}, nil
}

func (u *UnaryExpr) exprNode()           {}
func (u *UnaryExpr) Range() source.Range { return u.Rng }
func (u *UnaryExpr) String() string {
	if u.Op.IsPostfix() {
		return "(" + u.Operand.String() + u.Op.String() + ")"
	}
	return "(" + u.Op.String() + u.Operand.String() + ")"
}

// TernaryExpr is the `cond ? then : else` conditional expression.
type TernaryExpr struct {
	Cond Expression
	Then Expression
	Else Expression
	Rng  source.Range
}

func NewTernaryExpr(cond, then, els Expression, rng source.Range) (*TernaryExpr, error) {
	if cond == nil || then == nil || els == nil {
		return nil, invariantf("TernaryExpr", "condition, then and else must all be non-nil")
	}
	return &TernaryExpr{Cond: cond, Then: then, Else: els, Rng: rng}, nil
}

func (t *TernaryExpr) exprNode()           {}
func (t *TernaryExpr) Range() source.Range { return t.Rng }
func (t *TernaryExpr) String() string {
	return "(" + t.Cond.String() + " ? " + t.Then.String() + " : " + t.Else.String() + ")"
}

// CallExpr invokes Callee with Args.
type CallExpr struct {
	Callee Expression
	Args   []Expression
	Rng    source.Range
}

func NewCallExpr(callee Expression, args []Expression, rng source.Range) (*CallExpr, error) {
	if callee == nil {
		return nil, invariantf("CallExpr", "callee must not be nil")
	}
	return &CallExpr{Callee: callee, Args: args, Rng: rng}, nil
}

func (c *CallExpr) exprNode()           {}
func (c *CallExpr) Range() source.Range { return c.Rng }
func (c *CallExpr) String() string {
	return c.Callee.String() + "(" + joinExpr(c.Args) + ")"
}

// SubscriptExpr indexes Callee with Args (e.g. arr[i], matrix[i, j]).
type SubscriptExpr struct {
	Callee Expression
	Args   []Expression
	Rng    source.Range
}

func NewSubscriptExpr(callee Expression, args []Expression, rng source.Range) (*SubscriptExpr, error) {
	if callee == nil {
		return nil, invariantf("SubscriptExpr", "callee must not be nil")
	}
	return &SubscriptExpr{Callee: callee, Args: args, Rng: rng}, nil
}

func (s *SubscriptExpr) exprNode()           {}
func (s *SubscriptExpr) Range() source.Range { return s.Rng }
func (s *SubscriptExpr) String() string {
	return s.Callee.String() + "[" + joinExpr(s.Args) + "]"
}

// MemberExpr accesses a named member of Base (e.g. point.x). Name must be
// non-empty.
type MemberExpr struct {
	Base Expression
	Name string
	Rng  source.Range
}

func NewMemberExpr(base Expression, name string, rng source.Range) (*MemberExpr, error) {
	if base == nil {
		return nil, invariantf("MemberExpr", "base must not be nil")
	}
	if name == "" {
		return nil, invariantf("MemberExpr", "member name must not be empty")
	}
	return &MemberExpr{Base: base, Name: name, Rng: rng}, nil
}

func (m *MemberExpr) exprNode()           {}
func (m *MemberExpr) Range() source.Range { return m.Rng }
func (m *MemberExpr) String() string      { return m.Base.String() + "." + m.Name }

func joinExpr(exprs []Expression) string {
	var sb strings.Builder
	for i, e := range exprs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	return sb.String()
}
