package parser

import (
	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

func parseStmt(p *parser) ast.Stmt {
	stmtFn, exists := p.stmtLookupTable[p.curToken.Type]
	if !exists {
		p.errorf(p.curToken, "expected statement, got %s", describe(p.curToken))
	}
	return stmtFn(p)
}

// parseDeclStmt parses `let x` and `let x = expr`.
func parseDeclStmt(p *parser) ast.Stmt {
	p.consume(lexer.TokLet)
	name := p.consume(lexer.TokIdentifier)
	target := &ast.VarExpr{Name: name.Value}
	if p.curToken.Type != lexer.TokEquals {
		return &ast.DeclStmt{Target: target}
	}
	p.nextToken()
	return &ast.DeclAssignStmt{
		Target: target,
		Value:  parseExpr(p, bpDefault),
	}
}

func parseAssignStmt(p *parser) ast.Stmt {
	name := p.consume(lexer.TokIdentifier)
	p.consume(lexer.TokEquals)
	return &ast.AssignStmt{
		Target: &ast.VarExpr{Name: name.Value},
		Value:  parseExpr(p, bpDefault),
	}
}

func parseOutputStmt(p *parser) ast.Stmt {
	p.consume(lexer.TokOutput)
	p.consume(lexer.TokParenLeft)
	expr := parseExpr(p, bpDefault)
	p.consume(lexer.TokParenRight)
	return &ast.OutputStmt{Expr: expr}
}
