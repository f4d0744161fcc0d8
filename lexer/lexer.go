// Package lexer provides a simple lexical analyzer for arithmetic expressions.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// LexError reports input that matches no token class: an unexpected
// character, or a number literal that doesn't fit in an int64.
type LexError struct {
	Char rune // Offending character, 0 for out-of-range numbers.
	Pos  int  // Byte offset in the input.
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Pos, e.Msg)
}

type Lexer struct {
	input string

	curToken Token
	err      *LexError

	atEOF bool

	pos  int // Current position in input.
	line int // Current line in input.

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
}

// New creates a new Lexer for the given input.
// A Lexer is single use, a fresh scan requires a fresh Lexer.
func New(input string) *Lexer {
	l := &Lexer{
		input:     input,
		line:      1,
		startLine: 1,
	}
	return l
}

// Tokenize scans input to completion and returns the token sequence,
// including the terminal EOF token, or a *LexError.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokError:
			return nil, l.err
		case TokEOF:
			return append(tokens, tok), nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) NextToken() Token {
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	r, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	if r == '\n' {
		l.line--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.start,
		line:  l.startLine,
	}
	l.start = l.pos
	l.startLine = l.line
	return t
}

func (l *Lexer) emit(tt TokenType) stateFn {
	l.curToken = l.thisToken(tt)
	return nil
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
}

func (l *Lexer) errorf(char rune, format string, args ...any) stateFn {
	l.err = &LexError{
		Char: char,
		Pos:  l.start,
		Line: l.startLine,
		Msg:  fmt.Sprintf(format, args...),
	}
	l.curToken = Token{
		Type:  TokError,
		Value: l.err.Msg,
		pos:   l.start,
		line:  l.startLine,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
