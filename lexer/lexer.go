// Package lexer provides the lexical analyzer for the distribution language.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const digitChars = "0123456789"

type Lexer struct {
	input string

	curToken Token

	atEOF bool

	pos     int // Current position in input.
	line    int // Current line in input.
	col     int // Column of pos in the current line.
	prevCol int // Column before the last newline, for backup.

	start     int // Position of the start of the current token.
	startLine int // Line where the current token started.
	startCol  int // Column where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:     input,
		line:      1,
		col:       1,
		startLine: 1,
		startCol:  1,
	}
}

// NextToken lexes and returns the next token. Once the input is exhausted,
// or after an error token, it keeps returning EOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Value: "EOF", Line: l.line, Col: l.col}
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
		l.prevCol = l.col
		l.col = 1
	} else {
		l.col++
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
		l.col = l.prevCol
	} else {
		l.col--
	}
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	return l.acceptRunFunc(func(r rune) bool { return strings.ContainsRune(valid, r) })
}

func (l *Lexer) acceptRunFunc(valid func(rune) bool) bool {
	accepted := false
	for {
		r := l.next()
		if l.atEOF || !valid(r) {
			break
		}
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Line:  l.startLine,
		Col:   l.startCol,
	}
	l.start = l.pos
	l.startLine = l.line
	l.startCol = l.col
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) errorf(format string, args ...any) stateFn {
	l.curToken = Token{
		Type:  TokError,
		Value: fmt.Sprintf(format, args...),
		Line:  l.startLine,
		Col:   l.startCol,
	}
	l.input = l.input[:0]
	l.start = 0
	l.pos = 0
	l.atEOF = true
	return nil
}
