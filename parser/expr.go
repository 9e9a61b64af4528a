package parser

import (
	"strconv"
	"strings"

	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

// maxNesting bounds the depth of an expression tree. Deeper input is a
// syntax error.
const maxNesting = 10000

// nest records one more level of expression nesting.
func (p *parser) nest(tok lexer.Token) {
	p.depth++
	if p.depth > maxNesting {
		p.errorf(tok, "expression nested too deeply")
	}
}

func parseExpr(p *parser, bp bindingPower) ast.Expr {
	p.nest(p.curToken)
	levels := 1
	defer func() { p.depth -= levels }()

	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		p.errorf(p.curToken, "expected expression, got %s", describe(p.curToken))
	}
	left := nudFn(p)

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn, exists := p.ledLookupTable[p.curToken.Type]
		if !exists {
			p.errorf(p.curToken, "unexpected %s in expression", describe(p.curToken))
		}
		// Each operator puts the tree built so far one level deeper.
		p.nest(p.curToken)
		levels++
		left = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
	}

	return left
}

func parseNumberExpr(p *parser) ast.Expr {
	tok := p.consume(lexer.TokNumber)
	if strings.Contains(tok.Value, ".") {
		number, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			p.errorf(tok, "invalid number %q", tok.Value)
		}
		return &ast.FloatExpr{Value: number}
	}
	number, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		p.errorf(tok, "integer literal %s out of range", tok.Value)
	}
	return &ast.IntExpr{Value: number}
}

// parseIdentExpr handles var_ref and func_call: a bare identifier is a
// variable, `name(...)` a builtin call and `name:method(...)` a method call on
// a distribution.
func parseIdentExpr(p *parser) ast.Expr {
	switch p.peek().Type {
	case lexer.TokParenLeft:
		return parseCallExpr(p)
	case lexer.TokColon:
		return parseMethodCallExpr(p)
	}
	tok := p.consume(lexer.TokIdentifier)
	return &ast.VarExpr{Name: tok.Value}
}

func parseCallExpr(p *parser) ast.Expr {
	name := p.consume(lexer.TokIdentifier)
	builtin, ok := builtins[name.Value]
	if !ok {
		p.errorf(name, "unknown function %q", name.Value)
	}
	args := parseArgList(p)
	return &ast.DistExpr{Dist: builtin(p, name, args)}
}

func parseMethodCallExpr(p *parser) ast.Expr {
	v := p.consume(lexer.TokIdentifier)
	p.consume(lexer.TokColon)
	method := p.consume(lexer.TokIdentifier)
	return &ast.DistMethodCallExpr{
		Var:    v.Value,
		Method: method.Value,
		Args:   parseArgList(p),
	}
}

// parseArgList parses "(" (expr ("," expr)*)? ")".
func parseArgList(p *parser) []ast.Expr {
	p.consume(lexer.TokParenLeft)
	if p.curToken.Type == lexer.TokParenRight {
		p.nextToken()
		return nil
	}
	var args []ast.Expr
	for {
		args = append(args, parseExpr(p, bpDefault))
		if p.curToken.Type != lexer.TokComma {
			break
		}
		p.nextToken()
	}
	p.consume(lexer.TokParenRight)
	return args
}

func parseGroupingExpr(p *parser) ast.Expr {
	p.consume(lexer.TokParenLeft)
	expr := parseExpr(p, bpDefault)
	p.consume(lexer.TokParenRight)
	return expr
}

func parsePrefixExpr(p *parser) ast.Expr {
	p.consume(lexer.TokDash)
	return &ast.NegExpr{Right: parseExpr(p, bpUnary)}
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp)

	return &ast.BinaryExpr{
		Left:     left,
		Operator: operator.Type,
		Right:    right,
	}
}
