package ast

import "fmt"

// DeclStmt is `let x`: declares a numeric variable set to 0.
type DeclStmt struct {
	Target Expr
}

func (DeclStmt) stmt() {}

func (s DeclStmt) Dump() string { return fmt.Sprintf("let %s;", s.Target.Dump()) }

type AssignStmt struct {
	Target Expr
	Value  Expr
}

func (AssignStmt) stmt() {}

func (s AssignStmt) Dump() string {
	return fmt.Sprintf("%s = %s;", s.Target.Dump(), s.Value.Dump())
}

type DeclAssignStmt struct {
	Target Expr
	Value  Expr
}

func (DeclAssignStmt) stmt() {}

func (s DeclAssignStmt) Dump() string {
	return fmt.Sprintf("let %s = %s;", s.Target.Dump(), s.Value.Dump())
}

// OutputStmt is `output(expr)`: evaluates and prints expr.
type OutputStmt struct {
	Expr Expr
}

func (OutputStmt) stmt() {}

func (s OutputStmt) Dump() string { return fmt.Sprintf("output(%s);", s.Expr.Dump()) }
