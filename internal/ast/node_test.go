package ast

import (
	"testing"

	"github.com/cwbudde/shard/internal/source"
)

func sampleSource(t *testing.T) *Source {
	t.Helper()

	cond, err := NewBinaryExpr(OpLT, mustIdent(t, "i"), NewIntLiteral(10, source.Range{}), source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inc, err := NewUnaryExpr(OpPostInc, mustIdent(t, "i"), source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := NewCompoundStmt([]Statement{NewExprStmt(nil, source.Range{})}, source.Range{})
	forStmt, err := NewForStmt(nil, cond, inc, body, source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return NewSource([]Statement{forStmt}, source.Range{})
}

func mustIdent(t *testing.T, name string) *Identifier {
	t.Helper()
	id, err := NewIdentifier(name, source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return id
}

func TestWalkVisitsEveryNode(t *testing.T) {
	src := sampleSource(t)

	var kinds []string
	Inspect(src, func(n Node) bool {
		kinds = append(kinds, nodeKind(n))
		return true
	})

	want := []string{
		"Source", "ForStmt", "BinaryExpr", "Identifier", "IntLiteral",
		"UnaryExpr", "Identifier", "CompoundStmt", "ExprStmt",
	}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d: got %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("node %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestInspectCanPruneSubtree(t *testing.T) {
	src := sampleSource(t)

	var kinds []string
	Inspect(src, func(n Node) bool {
		kinds = append(kinds, nodeKind(n))
		// Stop descending once we reach the for loop's condition.
		_, isBinary := n.(*BinaryExpr)
		return !isBinary
	})

	want := []string{"Source", "ForStmt", "BinaryExpr", "UnaryExpr", "Identifier", "CompoundStmt", "ExprStmt"}
	if len(kinds) != len(want) {
		t.Fatalf("visited %d nodes, want %d: got %v", len(kinds), len(want), kinds)
	}
}

func nodeKind(n Node) string {
	switch n.(type) {
	case *Source:
		return "Source"
	case *ForStmt:
		return "ForStmt"
	case *BinaryExpr:
		return "BinaryExpr"
	case *UnaryExpr:
		return "UnaryExpr"
	case *Identifier:
		return "Identifier"
	case *IntLiteral:
		return "IntLiteral"
	case *CompoundStmt:
		return "CompoundStmt"
	case *ExprStmt:
		return "ExprStmt"
	default:
		return "Other"
	}
}

func TestWalkRebuildRoundTrip(t *testing.T) {
	// Walking a tree and reconstructing an equivalent one from the same
	// children must produce a structurally equal tree.
	lhs := NewIntLiteral(2, source.Range{Start: source.Location{Line: 1, Column: 1}})
	rhs := NewIntLiteral(5, source.Range{Start: source.Location{Line: 1, Column: 5}})
	original, err := NewBinaryExpr(OpAdd, lhs, rhs, source.Range{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rebuilt, err := NewBinaryExpr(original.Op, original.LHS, original.RHS, original.Rng)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rebuilt.String() != original.String() {
		t.Errorf("rebuilt String() = %q, want %q", rebuilt.String(), original.String())
	}
	if rebuilt.Range() != original.Range() {
		t.Errorf("rebuilt Range() = %v, want %v", rebuilt.Range(), original.Range())
	}
}
