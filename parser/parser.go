// Package parser builds an AST from the token sequence produced by the lexer.
package parser

import (
	"fmt"

	"go.creack.net/goexpr/ast"
	"go.creack.net/goexpr/lexer"
)

// ParseError reports a token that doesn't match what the active grammar
// rule requires.
type ParseError struct {
	Token    lexer.Token // Token actually seen.
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s but got %s", e.Token.Line(), e.Token.Pos(), e.Expected, e.Token)
}

type parser struct {
	tokens []lexer.Token

	pos      int
	curToken lexer.Token
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens}
	p.curToken = p.tokenAt(0)
	return p
}

// Parse builds the AST for the expression encoded by tokens.
// The expression must span the whole sequence: anything left over
// besides the terminal EOF token is an error.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	p := newParser(tokens)
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokEOF, "end of input"); err != nil {
		return nil, err
	}
	return node, nil
}

// ParseString tokenizes and parses input in one call.
func ParseString(input string) (ast.Node, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *parser) tokenAt(i int) lexer.Token {
	if i >= len(p.tokens) {
		return lexer.Token{Type: lexer.TokEOF}
	}
	return p.tokens[i]
}

// nextToken advances the cursor. curToken is the single notion of
// "current token", every grammar rule reads it.
func (p *parser) nextToken() lexer.Token {
	p.pos++
	p.curToken = p.tokenAt(p.pos)
	return p.curToken
}

// expect consumes the current token if it is of the expected type.
func (p *parser) expect(kind lexer.TokenType, what string) (lexer.Token, error) {
	if p.curToken.Type != kind {
		return lexer.Token{}, &ParseError{Token: p.curToken, Expected: what}
	}
	tok := p.curToken
	p.nextToken()
	return tok, nil
}
