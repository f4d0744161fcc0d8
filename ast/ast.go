// Package ast defines the syntax tree for arithmetic expressions.
package ast

import (
	"fmt"
	"strconv"

	"go.creack.net/goexpr/lexer"
)

// Node is a node of the expression tree. A node is either a NumberExpr
// leaf or a BinaryExpr with two owned children, nothing else implements
// the interface. Nodes are never mutated after construction.
type Node interface {
	Dump() string
	node()
}

// NumberExpr is an integer literal leaf.
type NumberExpr struct {
	Value int64
}

func (NumberExpr) node() {}

func (n NumberExpr) Dump() string {
	return strconv.FormatInt(n.Value, 10)
}

// BinaryExpr applies Operator to the Left and Right subtrees.
// The operator token is one of + - * / and carries its input position.
type BinaryExpr struct {
	Left     Node
	Operator lexer.Token
	Right    Node
}

func (BinaryExpr) node() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator.Value, b.Right.Dump())
}
