package lexer

import "unicode"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'=': TokEquals,
	'+': TokPlus,
	'-': TokDash,
	'*': TokStar,
	'/': TokSlash,
	':': TokColon,
	',': TokComma,
	';': TokSemicolon,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	if l.atEOF {
		return l.emit(TokEOF)
	}

	switch r := l.peek(); {
	case l.atEOF:
		return l.emit(TokEOF)
	case unicode.IsSpace(r):
		l.acceptRunFunc(unicode.IsSpace)
		return l.emit(TokWhitespace)
	case r >= '0' && r <= '9':
		return lexNumber
	case isLetter(r):
		return lexIdentifier
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		return l.errorf("unexpected character: %q", r)
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	if l.peek() == '.' {
		l.next()
		if !l.acceptRun(digitChars) {
			return l.errorf("malformed number %q: expected digit after '.'", l.input[l.start:l.pos])
		}
	}
	return l.emit(TokNumber)
}

func lexIdentifier(l *Lexer) stateFn {
	l.next() // Leading letter, checked by lexText.
	l.acceptRunFunc(isAlphanumeric)
	if kw, ok := keywords[l.input[l.start:l.pos]]; ok {
		return l.emit(kw)
	}
	return l.emit(TokIdentifier)
}

// Identifiers are ASCII only.
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphanumeric(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9')
}
