package lexer

import "strconv"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case r == 0:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		l.acceptRun(" \t\n\r")
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf(r, "unexpected character: %q", r)
	}
}

func lexNumber(l *Lexer) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	// Catch literals that would silently wrap around.
	if _, err := strconv.ParseInt(l.input[l.start:l.pos], 10, 64); err != nil {
		return l.errorf(0, "number out of range: %q", l.input[l.start:l.pos])
	}
	return l.emit(TokNumber)
}
