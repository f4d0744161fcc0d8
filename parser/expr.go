package parser

import (
	"strconv"

	"go.creack.net/goexpr/ast"
	"go.creack.net/goexpr/lexer"
)

// expression := term ((+|-) term)*
func (p *parser) parseExpression() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokPlus, lexer.TokMinus) {
		operator := p.curToken
		p.nextToken()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		// Fold left so that chains of same-precedence operators nest
		// toward the left child.
		left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

// term := factor ((*|/) factor)*
func (p *parser) parseTerm() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curToken.Type.IsOneOf(lexer.TokStar, lexer.TokSlash) {
		operator := p.curToken
		p.nextToken()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryExpr{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

// factor := NUMBER | "(" expression ")"
func (p *parser) parseFactor() (ast.Node, error) {
	switch p.curToken.Type {
	case lexer.TokNumber:
		tok := p.curToken
		p.nextToken()
		value, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			// Only reachable with a hand-crafted token sequence, the
			// lexer validates number literals.
			return nil, &ParseError{Token: tok, Expected: "an int64 number literal"}
		}
		return ast.NumberExpr{Value: value}, nil
	case lexer.TokParenLeft:
		p.nextToken()
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight, `")"`); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, &ParseError{Token: p.curToken, Expected: `a number or "("`}
	}
}
