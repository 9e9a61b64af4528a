package parser

import (
	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

// builtinHandler validates the arguments of a builtin call and builds the
// distribution it denotes. name is the call's name token, for error positions.
type builtinHandler func(p *parser, name lexer.Token, args []ast.Expr) ast.Dist

// builtins are the only callable names. Arity and argument shape are checked
// here, at parse time.
var builtins = map[string]builtinHandler{
	"uniform":  parseUniform,
	"discrete": parseDiscrete,
	"chain":    parseChain,
}

// uniform(a, b) with integer literal bounds.
func parseUniform(p *parser, name lexer.Token, args []ast.Expr) ast.Dist {
	if len(args) != 2 {
		p.errorf(name, "uniform takes 2 arguments, got %d", len(args))
	}
	for i, arg := range args {
		if !isIntLiteral(arg) {
			p.errorf(name, "uniform argument %d must be an integer literal, got %s", i+1, arg.Dump())
		}
	}
	return &ast.UniformDist{Lo: args[0], Hi: args[1]}
}

// discrete(v1, p1, v2, p2, ...).
func parseDiscrete(p *parser, name lexer.Token, args []ast.Expr) ast.Dist {
	if len(args) == 0 || len(args)%2 != 0 {
		p.errorf(name, "discrete takes value/probability pairs, got %d arguments", len(args))
	}
	d := &ast.DiscreteDist{Pairs: make([]ast.DiscretePair, 0, len(args)/2)}
	for i := 0; i < len(args); i += 2 {
		if _, ok := args[i].(*ast.DistExpr); ok {
			p.errorf(name, "discrete value %d must be numeric, got %s", i/2+1, args[i].Dump())
		}
		if _, ok := args[i+1].(*ast.DistExpr); ok {
			p.errorf(name, "discrete probability %d must be numeric, got %s", i/2+1, args[i+1].Dump())
		}
		d.Pairs = append(d.Pairs, ast.DiscretePair{Value: args[i], Prob: args[i+1]})
	}
	return d
}

// chain(d1, n, d2).
func parseChain(p *parser, name lexer.Token, args []ast.Expr) ast.Dist {
	if len(args) != 3 {
		p.errorf(name, "chain takes 3 arguments, got %d", len(args))
	}
	head, ok := args[0].(*ast.DistExpr)
	if !ok {
		p.errorf(name, "chain argument 1 must be a distribution, got %s", args[0].Dump())
	}
	count, ok := args[1].(*ast.IntExpr)
	if !ok || count.Value < 0 {
		p.errorf(name, "chain argument 2 must be a non-negative integer literal, got %s", args[1].Dump())
	}
	tail, ok := args[2].(*ast.DistExpr)
	if !ok {
		p.errorf(name, "chain argument 3 must be a distribution, got %s", args[2].Dump())
	}
	return &ast.ChainDist{Head: head.Dist, Count: uint64(count.Value), Tail: tail.Dist}
}

// isIntLiteral reports whether e is an integer literal, optionally negated.
func isIntLiteral(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.IntExpr:
		return true
	case *ast.NegExpr:
		_, ok := e.Right.(*ast.IntExpr)
		return ok
	default:
		return false
	}
}
