package parser

import (
	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
	bpUnary
	bpPrimary
)

type stmtHandler func(*parser) ast.Stmt
type nudHandler func(*parser) ast.Expr
type ledHandler func(*parser, ast.Expr, bindingPower) ast.Expr

type lookupTable[T any] map[lexer.TokenType]T

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) stmt(kind lexer.TokenType, fn stmtHandler) {
	if _, ok := p.stmtLookupTable[kind]; ok {
		panic("duplicate stmt handler")
	}
	p.stmtLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bpDefault
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative, left-associative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokDash, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)

	// Literals & symbols.
	p.nud(lexer.TokNumber, parseNumberExpr)
	p.nud(lexer.TokIdentifier, parseIdentExpr)
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokDash, parsePrefixExpr)

	// Statements.
	p.stmt(lexer.TokLet, parseDeclStmt)
	p.stmt(lexer.TokOutput, parseOutputStmt)
	p.stmt(lexer.TokIdentifier, parseAssignStmt)
}
