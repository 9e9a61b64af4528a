package parser

import (
	"strings"

	"github.com/edwingeng/deque"

	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

type parser struct {
	lex *lexer.Lexer

	prevToken lexer.Token
	curToken  lexer.Token

	lookahead deque.Deque // Buffered lexer.Token values.

	depth int // Expression nesting of the node being parsed.

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	stmtLookupTable         lookupTable[stmtHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(lex *lexer.Lexer) *parser {
	p := &parser{
		lex:                     lex,
		lookahead:               deque.NewDeque(),
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		stmtLookupTable:         lookupTable[stmtHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	return p
}

// Parse parses a whole program. The entire input must be consumed: anything
// left after the last statement is an error. On failure the returned error
// is a *Error and no partial program is returned.
func Parse(input string) (_ ast.Program, err error) {
	defer recoverError(&err)

	p := newParser(lexer.New(input))
	p.nextToken()
	return parseProgram(p), nil
}

// nextToken advances to the next significant token. Whitespace is skipped and
// lexer errors abort the parse.
func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	p.curToken = p.pull()
	if p.curToken.Type == lexer.TokError {
		p.errorf(p.curToken, "%s", p.curToken.Value)
	}
	return p.curToken
}

// peek returns the significant token after the current one without consuming it.
func (p *parser) peek() lexer.Token {
	if p.lookahead.Empty() {
		p.lookahead.PushBack(p.scan())
	}
	return p.lookahead.Front().(lexer.Token)
}

func (p *parser) pull() lexer.Token {
	if !p.lookahead.Empty() {
		tok := p.lookahead.Front().(lexer.Token)
		p.lookahead.PopFront()
		return tok
	}
	return p.scan()
}

func (p *parser) scan() lexer.Token {
	tok := p.lex.NextToken()
	for tok.Type == lexer.TokWhitespace {
		tok = p.lex.NextToken()
	}
	return tok
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	names := make([]string, 0, len(kind))
	for _, k := range kind {
		names = append(names, k.String())
	}
	p.errorf(p.curToken, "expected %s, got %s", strings.Join(names, " or "), describe(p.curToken))
	return lexer.Token{}
}

// consume expects the current token and advances past it.
func (p *parser) consume(kind ...lexer.TokenType) lexer.Token {
	tok := p.expect(kind...)
	p.nextToken()
	return tok
}

func parseProgram(p *parser) ast.Program {
	prog := ast.Program{Stmts: []ast.Stmt{parseStmt(p)}}
	for p.curToken.Type == lexer.TokSemicolon {
		p.nextToken()
		// Trailing semicolon.
		if p.curToken.Type == lexer.TokEOF {
			break
		}
		prog.Stmts = append(prog.Stmts, parseStmt(p))
	}
	if p.curToken.Type != lexer.TokEOF {
		p.errorf(p.curToken, "unexpected %s after statement, expected %q or end of input", describe(p.curToken), ";")
	}
	return prog
}
