package ast

import (
	"strings"
)

// Every node can render itself back to source with Dump. Parsing the dump of
// a program yields a program with the same dump.

// Program represents the top-level program: statements in execution order.
type Program struct {
	Stmts []Stmt
}

func (p Program) Dump() string {
	var b strings.Builder
	for _, stmt := range p.Stmts {
		b.WriteString(stmt.Dump())
		b.WriteByte('\n')
	}
	return b.String()
}

// Stmt is a top-level statement.
type Stmt interface {
	Dump() string
	stmt()
}

// Expr is a numeric or distribution-valued expression.
type Expr interface {
	Dump() string
	expr()
}

// Dist is a distribution description. Bounds, values and probabilities are
// expressions evaluated when the distribution is used, not when it is bound.
type Dist interface {
	Dump() string
	dist()
}

func dumpList[T interface{ Dump() string }](elems []T) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		parts = append(parts, e.Dump())
	}
	return strings.Join(parts, ", ")
}
