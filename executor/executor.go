package executor

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"go.creack.net/distlang/ast"
	"go.creack.net/distlang/lexer"
)

// DefaultMaxOutcomes bounds how many outcomes a single distribution
// computation may materialize.
const DefaultMaxOutcomes = 1 << 20

const methodExpect = "expect"

// Option configures an Executor.
type Option func(*Executor)

// WithMaxOutcomes overrides DefaultMaxOutcomes. Non-positive values are ignored.
func WithMaxOutcomes(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.maxOutcomes = n
		}
	}
}

// WithKeepGoing makes Evaluate report failing statements on stderr and carry
// on with the next one instead of stopping at the first failure.
func WithKeepGoing(stderr io.Writer) Option {
	return func(e *Executor) {
		if stderr == nil {
			stderr = os.Stderr
		}
		e.keepGoing = true
		e.stderr = stderr
	}
}

// Executor runs statements against a single environment.
type Executor struct {
	env    *Env
	stdout io.Writer

	maxOutcomes int
	keepGoing   bool
	stderr      io.Writer
}

// New creates an Executor with a fresh environment, printing to stdout.
func New(stdout io.Writer, opts ...Option) *Executor {
	if stdout == nil {
		stdout = os.Stdout
	}
	e := &Executor{
		env:         NewEnv(),
		stdout:      stdout,
		maxOutcomes: DefaultMaxOutcomes,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs prog with a fresh Executor.
func Evaluate(prog ast.Program, stdout io.Writer, opts ...Option) error {
	return New(stdout, opts...).Evaluate(prog)
}

// Env returns the environment the executor mutates.
func (e *Executor) Env() *Env { return e.env }

// Evaluate executes the statements of prog in order. It stops at the first
// failure unless WithKeepGoing was set, in which case every failure is
// reported and the joined errors are returned at the end.
func (e *Executor) Evaluate(prog ast.Program) error {
	var errs []error
	for _, stmt := range prog.Stmts {
		if err := e.Exec(stmt); err != nil {
			err = fmt.Errorf("exec %q: %w", stmt.Dump(), err)
			if !e.keepGoing {
				return err
			}
			fmt.Fprintf(e.stderr, "distlang: %s\n", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exec executes a single statement.
func (e *Executor) Exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		name, err := targetName(s.Target)
		if err != nil {
			return err
		}
		e.env.SetNumber(name, 0)
		return nil
	case *ast.AssignStmt:
		return e.assign(s.Target, s.Value)
	case *ast.DeclAssignStmt:
		return e.assign(s.Target, s.Value)
	case *ast.OutputStmt:
		v, err := e.Eval(s.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(e.stdout, FormatNumber(v)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported statement %T", ErrTypeMismatch, s)
	}
}

func targetName(target ast.Expr) (string, error) {
	v, ok := target.(*ast.VarExpr)
	if !ok {
		return "", fmt.Errorf("%w: cannot assign to %s", ErrTypeMismatch, target.Dump())
	}
	return v.Name, nil
}

// assign binds the target to a distribution when value is distribution-shaped
// and to a number otherwise. The shape check must come first: x + y over two
// distributions is a convolution, not a numeric sum.
func (e *Executor) assign(target, value ast.Expr) error {
	name, err := targetName(target)
	if err != nil {
		return err
	}
	if d, ok := e.distOf(value); ok {
		e.env.SetDist(name, d)
		return nil
	}
	v, err := e.Eval(value)
	if err != nil {
		return err
	}
	e.env.SetNumber(name, v)
	return nil
}

// distOf returns the distribution denoted by expr: a distribution literal, a
// name bound to a distribution, or the sum of two such expressions.
func (e *Executor) distOf(expr ast.Expr) (ast.Dist, bool) {
	switch x := expr.(type) {
	case *ast.DistExpr:
		return x.Dist, true
	case *ast.VarExpr:
		return e.env.Dist(x.Name)
	case *ast.BinaryExpr:
		if x.Operator != lexer.TokPlus {
			return nil, false
		}
		left, ok := e.distOf(x.Left)
		if !ok {
			return nil, false
		}
		right, ok := e.distOf(x.Right)
		if !ok {
			return nil, false
		}
		return &ast.CombinedDist{Left: left, Right: right}, true
	default:
		return nil, false
	}
}

// Eval evaluates expr to a number. Arithmetic is IEEE-754 float64: dividing
// by zero yields an infinity or NaN, not an error.
func (e *Executor) Eval(expr ast.Expr) (float64, error) {
	switch x := expr.(type) {
	case *ast.IntExpr:
		return float64(x.Value), nil
	case *ast.FloatExpr:
		return x.Value, nil
	case *ast.VarExpr:
		return e.lookupNumber(x.Name)
	case *ast.NegExpr:
		v, err := e.Eval(x.Right)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *ast.BinaryExpr:
		return e.evalBinary(x)
	case *ast.DistExpr:
		return 0, fmt.Errorf("%w: cannot use distribution %s as a number", ErrTypeMismatch, x.Dump())
	case *ast.DistMethodCallExpr:
		return e.callMethod(x)
	default:
		return 0, fmt.Errorf("%w: unsupported expression %T", ErrTypeMismatch, x)
	}
}

func (e *Executor) evalBinary(x *ast.BinaryExpr) (float64, error) {
	left, err := e.Eval(x.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.Eval(x.Right)
	if err != nil {
		return 0, err
	}
	switch x.Operator {
	case lexer.TokPlus:
		return left + right, nil
	case lexer.TokDash:
		return left - right, nil
	case lexer.TokStar:
		return left * right, nil
	case lexer.TokSlash:
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: unsupported operator %s", ErrTypeMismatch, x.Operator)
	}
}

func (e *Executor) lookupNumber(name string) (float64, error) {
	if v, ok := e.env.Number(name); ok {
		return v, nil
	}
	if _, ok := e.env.Dist(name); ok {
		return 0, fmt.Errorf("%w: %q is a distribution, not a number", ErrTypeMismatch, name)
	}
	return 0, fmt.Errorf("%w: %q", ErrUndefinedVariable, name)
}

func (e *Executor) lookupDist(name string) (ast.Dist, error) {
	if d, ok := e.env.Dist(name); ok {
		return d, nil
	}
	if _, ok := e.env.Number(name); ok {
		return nil, fmt.Errorf("%w: %q is a number, not a distribution", ErrTypeMismatch, name)
	}
	return nil, fmt.Errorf("%w: %q", ErrUndefinedDistribution, name)
}

func (e *Executor) callMethod(call *ast.DistMethodCallExpr) (float64, error) {
	d, err := e.lookupDist(call.Var)
	if err != nil {
		return 0, err
	}
	switch call.Method {
	case methodExpect:
		if len(call.Args) != 1 {
			return 0, fmt.Errorf("%w: %s takes 1 argument, got %d", ErrArity, methodExpect, len(call.Args))
		}
		k, err := e.evalInt(call.Args[0])
		if err != nil {
			return 0, fmt.Errorf("%s argument: %w", methodExpect, err)
		}
		return e.Expect(d, k)
	default:
		return 0, fmt.Errorf("%w: %q on %q", ErrUnknownMethod, call.Method, call.Var)
	}
}

// evalInt evaluates expr and requires an integral result within int64 range.
func (e *Executor) evalInt(expr ast.Expr) (int64, error) {
	v, err := e.Eval(expr)
	if err != nil {
		return 0, err
	}
	i, ok := toInt64(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, not an integer", ErrTypeMismatch, expr.Dump(), FormatNumber(v))
	}
	return i, nil
}

func toInt64(v float64) (int64, bool) {
	if v != math.Trunc(v) || v < math.MinInt64 || v >= -math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}

// FormatNumber renders v the way output prints it: integral values without
// a fractional part, everything else in the shortest float form.
func FormatNumber(v float64) string {
	if i, ok := toInt64(v); ok {
		return strconv.FormatInt(i, 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
