package parser

import (
	"errors"
	"fmt"

	"go.creack.net/distlang/lexer"
)

// ErrSyntax is wrapped by every error Parse returns.
var ErrSyntax = errors.New("syntax error")

// Error is a parse failure at a position in the input.
type Error struct {
	Line int // 1-based line of the offending token.
	Col  int // 1-based column of the offending token.
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, ErrSyntax, e.Msg)
}

func (e *Error) Unwrap() error { return ErrSyntax }

// Pos returns the line and column of the error.
func (e *Error) Pos() (int, int) { return e.Line, e.Col }

// errorf aborts the parse with an error located at tok.
func (p *parser) errorf(tok lexer.Token, format string, args ...any) {
	panic(&Error{
		Line: tok.Line,
		Col:  tok.Col,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// recoverError turns an aborted parse back into a returned error.
func recoverError(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	perr, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	*errp = perr
}

// describe renders a token for error messages.
func describe(tok lexer.Token) string {
	if tok.Type == lexer.TokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Value)
}
