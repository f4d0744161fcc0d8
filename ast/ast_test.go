package ast

import (
	"testing"

	"go.creack.net/goexpr/lexer"
)

func TestDump(t *testing.T) {
	// 2 + 3 * 4, built by hand.
	tree := BinaryExpr{
		Left: NumberExpr{Value: 2},
		Operator: lexer.Token{
			Type:  lexer.TokPlus,
			Value: "+",
		},
		Right: BinaryExpr{
			Left: NumberExpr{Value: 3},
			Operator: lexer.Token{
				Type:  lexer.TokStar,
				Value: "*",
			},
			Right: NumberExpr{Value: 4},
		},
	}

	if expected, got := "(2 + (3 * 4))", tree.Dump(); got != expected {
		t.Fatalf("Expected dump %q, got %q", expected, got)
	}
}
