package ast

import (
	"fmt"
	"strconv"
	"strings"

	"go.creack.net/distlang/lexer"
)

type IntExpr struct {
	Value int64
}

func (IntExpr) expr() {}

func (e IntExpr) Dump() string { return strconv.FormatInt(e.Value, 10) }

type FloatExpr struct {
	Value float64
}

func (FloatExpr) expr() {}

func (e FloatExpr) Dump() string {
	s := strconv.FormatFloat(e.Value, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	// Keep the literal a float when dumped back.
	return s + ".0"
}

type VarExpr struct {
	Name string
}

func (VarExpr) expr() {}

func (e VarExpr) Dump() string { return e.Name }

type NegExpr struct {
	Right Expr
}

func (NegExpr) expr() {}

func (e NegExpr) Dump() string { return "-" + e.Right.Dump() }

// BinaryExpr is one of the Add, Sub, Mul or Div nodes, told apart by Operator
// (lexer.TokPlus, TokDash, TokStar or TokSlash).
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType
	Right    Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.Dump(), OperatorSymbol(e.Operator), e.Right.Dump())
}

// OperatorSymbol returns the source symbol of a binary operator token type.
func OperatorSymbol(op lexer.TokenType) string {
	switch op {
	case lexer.TokPlus:
		return "+"
	case lexer.TokDash:
		return "-"
	case lexer.TokStar:
		return "*"
	case lexer.TokSlash:
		return "/"
	default:
		return "?" + op.String() + "?"
	}
}

// DistExpr is a distribution literal used as a value.
type DistExpr struct {
	Dist Dist
}

func (DistExpr) expr() {}

func (e DistExpr) Dump() string { return e.Dist.Dump() }

// DistMethodCallExpr invokes a query on the distribution bound to Var,
// e.g. z:expect(7).
type DistMethodCallExpr struct {
	Var    string
	Method string
	Args   []Expr
}

func (DistMethodCallExpr) expr() {}

func (e DistMethodCallExpr) Dump() string {
	return fmt.Sprintf("%s:%s(%s)", e.Var, e.Method, dumpList(e.Args))
}
