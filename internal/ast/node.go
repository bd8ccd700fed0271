package ast

import "github.com/cwbudde/shard/internal/source"

// Node is the base interface implemented by every AST node. Unlike a
// parsed-token tree, Shard nodes carry only a source.Range; there is no
// lexer token attached to them because tokenization is a collaborator
// outside this package.
type Node interface {
	// Range returns the node's extent in the original source text.
	Range() source.Range

	// String renders the node back to Shard-like source text. It exists
	// for debugging and for the round-trip tests, not for pretty-printing
	// (the printer package renders IR modules, not AST nodes).
	String() string
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is any node that produces an effect but no value.
type Statement interface {
	Node
	stmtNode()
}

// Decl is any top-level or nested declaration. DeclName is used by the
// analysis package to index declarations by name in a scope.
type Decl interface {
	Node
	declNode()
	DeclName() string
}

// Visitor dispatches on node kind during a tree walk. Visit is called with
// each node Walk encounters; if it returns a non-nil Visitor, Walk
// continues with that visitor for the node's children, then calls Visit(nil)
// once the children have been visited (mirroring go/ast.Visitor).
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses an AST in depth-first order, starting at node. It is the
// implementation of the "visit/dump" capability required of every node
// kind: callers needing a custom traversal (renaming, dumping, counting)
// implement Visitor rather than adding a method per concern to every node.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	v = v.Visit(node)
	if v == nil {
		return
	}
	defer v.Visit(nil)

	switch n := node.(type) {
	case *Source:
		for _, s := range n.Statements {
			Walk(v, s)
		}
	case *Identifier, *IntLiteral, *FloatLiteral, *BoolLiteral, *CharLiteral,
		*StringLiteral, *NullLiteral, *ContinueStmt, *BreakStmt:
		// leaves

	case *ParenExpr:
		Walk(v, n.Inner)
	case *BinaryExpr:
		Walk(v, n.LHS)
		Walk(v, n.RHS)
	case *UnaryExpr:
		Walk(v, n.Operand)
	case *TernaryExpr:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *CallExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *SubscriptExpr:
		Walk(v, n.Callee)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *MemberExpr:
		Walk(v, n.Base)

	case *ExprStmt:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}
	case *DeclStmt:
		Walk(v, n.Decl)
	case *CompoundStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *IfStmt:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}
	case *WhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *DoWhileStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *ForStmt:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Cond != nil {
			Walk(v, n.Cond)
		}
		if n.Inc != nil {
			Walk(v, n.Inc)
		}
		Walk(v, n.Body)
	case *SwitchStmt:
		Walk(v, n.Cond)
		Walk(v, n.Body)
	case *CaseStmt:
		Walk(v, n.Expr)
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *DefaultStmt:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *ReturnStmt:
		if n.Result != nil {
			Walk(v, n.Result)
		}

	case *VarDecl:
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *FuncDecl:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Body)
	case *CompoundDecl:
		for _, d := range n.Decls {
			Walk(v, d)
		}

	default:
		panic("ast.Walk: unhandled node type")
	}
}

// inspector adapts a plain function to the Visitor interface, the same
// convenience go/ast offers via Inspect.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect walks node in depth-first order, calling f for each node. It
// stops descending into a subtree when f returns false for that node's
// entry call, but f(nil) is never observed (unlike Walk/Visitor, Inspect
// does not deliver a post-order callback).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(func(n Node) bool {
		if n == nil {
			return false
		}
		return f(n)
	}), node)
}
