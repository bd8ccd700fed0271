package analysis

import "github.com/cwbudde/shard/internal/ast"

// Analyzer walks a Source tree checking the two rules the core is
// responsible for: no two declarations share a name within the same
// scope, and every identifier expression resolves to some enclosing
// declaration. Errors are collected rather than aborting the walk, so a
// single Analyze call reports every violation it finds.
type Analyzer struct {
	errs []error
}

// NewAnalyzer returns an Analyzer with no accumulated errors.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Errors returns every AnalysisError collected by the most recent Analyze
// call, in the order they were found.
func (a *Analyzer) Errors() []error {
	return a.errs
}

// Analyze walks src under a fresh root context and returns whether the
// source is free of analysis errors. Errors() holds the details.
func (a *Analyzer) Analyze(src *ast.Source) bool {
	a.errs = nil
	root := NewContext()
	for _, stmt := range src.Statements {
		a.analyzeStmt(stmt, root)
	}
	return len(a.errs) == 0
}

func (a *Analyzer) report(err error) {
	a.errs = append(a.errs, err)
}

func (a *Analyzer) declare(ctx *Context, decl ast.Decl) {
	if err := ctx.AddDecl(decl); err != nil {
		a.report(err)
	}
}

func (a *Analyzer) analyzeStmt(stmt ast.Statement, ctx *Context) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		if s.Expr != nil {
			a.analyzeExpr(s.Expr, ctx)
		}
	case *ast.DeclStmt:
		a.analyzeDecl(s.Decl, ctx)
	case *ast.CompoundStmt:
		inner := ctx.Push()
		for _, st := range s.Stmts {
			a.analyzeStmt(st, inner)
		}
	case *ast.IfStmt:
		a.analyzeExpr(s.Cond, ctx)
		a.analyzeStmt(s.Then, ctx)
		if s.Else != nil {
			a.analyzeStmt(s.Else, ctx)
		}
	case *ast.WhileStmt:
		a.analyzeExpr(s.Cond, ctx)
		a.analyzeStmt(s.Body, ctx)
	case *ast.DoWhileStmt:
		a.analyzeStmt(s.Body, ctx)
		a.analyzeExpr(s.Cond, ctx)
	case *ast.ForStmt:
		inner := ctx.Push()
		if s.Init != nil {
			a.analyzeStmt(s.Init, inner)
		}
		if s.Cond != nil {
			a.analyzeExpr(s.Cond, inner)
		}
		if s.Inc != nil {
			a.analyzeExpr(s.Inc, inner)
		}
		a.analyzeStmt(s.Body, inner)
	case *ast.SwitchStmt:
		a.analyzeExpr(s.Cond, ctx)
		a.analyzeStmt(s.Body, ctx)
	case *ast.CaseStmt:
		a.analyzeExpr(s.Expr, ctx)
		inner := ctx.Push()
		for _, st := range s.Stmts {
			a.analyzeStmt(st, inner)
		}
	case *ast.DefaultStmt:
		inner := ctx.Push()
		for _, st := range s.Stmts {
			a.analyzeStmt(st, inner)
		}
	case *ast.ReturnStmt:
		if s.Result != nil {
			a.analyzeExpr(s.Result, ctx)
		}
	case *ast.ContinueStmt, *ast.BreakStmt:
		// no names to resolve
	}
}

func (a *Analyzer) analyzeDecl(decl ast.Decl, ctx *Context) {
	a.declare(ctx, decl)

	switch d := decl.(type) {
	case *ast.VarDecl:
		if d.Init != nil {
			a.analyzeExpr(d.Init, ctx)
		}
	case *ast.FuncDecl:
		inner := ctx.Push()
		for _, p := range d.Params {
			a.declare(inner, p)
		}
		for _, st := range d.Body.Stmts {
			a.analyzeStmt(st, inner)
		}
	case *ast.CompoundDecl:
		inner := ctx.Push()
		for _, m := range d.Decls {
			a.analyzeDecl(m, inner)
		}
	}
}

func (a *Analyzer) analyzeExpr(expr ast.Expression, ctx *Context) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if _, ok := ctx.FindDecl(e.Name); !ok {
			a.report(&UnresolvedIdentError{Name: e.Name})
		}
	case *ast.ParenExpr:
		a.analyzeExpr(e.Inner, ctx)
	case *ast.BinaryExpr:
		a.analyzeExpr(e.LHS, ctx)
		a.analyzeExpr(e.RHS, ctx)
	case *ast.UnaryExpr:
		a.analyzeExpr(e.Operand, ctx)
	case *ast.TernaryExpr:
		a.analyzeExpr(e.Cond, ctx)
		a.analyzeExpr(e.Then, ctx)
		a.analyzeExpr(e.Else, ctx)
	case *ast.CallExpr:
		a.analyzeExpr(e.Callee, ctx)
		for _, arg := range e.Args {
			a.analyzeExpr(arg, ctx)
		}
	case *ast.SubscriptExpr:
		a.analyzeExpr(e.Callee, ctx)
		for _, arg := range e.Args {
			a.analyzeExpr(arg, ctx)
		}
	case *ast.MemberExpr:
		// Base is resolved; Name is a member of Base's type, not a
		// standalone identifier, so it isn't looked up in scope.
		a.analyzeExpr(e.Base, ctx)
	}
}
