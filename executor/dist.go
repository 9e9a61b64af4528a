package executor

import (
	"cmp"
	"fmt"
	"slices"

	"go.creack.net/distlang/ast"
)

// Outcome is one value of a distribution with its probability.
type Outcome struct {
	Value int64
	Prob  float64
}

// Outcomes enumerates the weighted outcomes of d.
//
// Uniform outcomes come in ascending order. Discrete outcomes come in
// declaration order; when a value is declared more than once the first pair
// wins and later ones are dropped. Combined outcomes are the full cross
// product of both sides, left-major, without merging equal sums. Enumerations
// larger than the executor's outcome limit fail with ErrResourceExhausted.
func (e *Executor) Outcomes(d ast.Dist) ([]Outcome, error) {
	return e.newDistWalk().outcomes(d)
}

// Expect returns P(d = k).
func (e *Executor) Expect(d ast.Dist, k int64) (float64, error) {
	switch d := d.(type) {
	case *ast.UniformDist:
		lo, hi, span, err := e.uniformBounds(d)
		if err != nil {
			return 0, err
		}
		if k < lo || k > hi {
			return 0, nil
		}
		return 1 / (float64(span) + 1), nil
	case *ast.DiscreteDist:
		outcomes, err := e.discreteOutcomes(d)
		if err != nil {
			return 0, err
		}
		for _, o := range outcomes {
			if o.Value == k {
				return o.Prob, nil
			}
		}
		return 0, nil
	case *ast.CombinedDist:
		w := e.newDistWalk()
		left, err := w.massTable(d.Left)
		if err != nil {
			return 0, err
		}
		right, err := w.massTable(d.Right)
		if err != nil {
			return 0, err
		}
		index := make(map[int64]float64, len(right))
		for _, o := range right {
			index[o.Value] = o.Prob
		}
		var total float64
		for _, l := range left {
			need, ok := subInt64(k, l.Value)
			if !ok {
				continue
			}
			if p, ok := index[need]; ok {
				total += l.Prob * p
			}
		}
		return total, nil
	case *ast.ChainDist:
		return 0, fmt.Errorf("%w: %s", ErrUnimplemented, d.Dump())
	default:
		return 0, fmt.Errorf("%w: unsupported distribution %T", ErrTypeMismatch, d)
	}
}

// distWalk is one traversal of a distribution graph. Assignments like
// x = x + x make both sides of a CombinedDist the same node, so results are
// memoized per node and every visit is charged against the outcome limit.
type distWalk struct {
	e           *Executor
	steps       int
	outcomeMemo map[*ast.CombinedDist][]Outcome
	massMemo    map[*ast.CombinedDist][]Outcome
}

func (e *Executor) newDistWalk() *distWalk {
	return &distWalk{
		e:           e,
		outcomeMemo: map[*ast.CombinedDist][]Outcome{},
		massMemo:    map[*ast.CombinedDist][]Outcome{},
	}
}

func (w *distWalk) step() error {
	w.steps++
	if w.steps > w.e.maxOutcomes {
		return fmt.Errorf("%w: distribution walk takes more than %d steps", ErrResourceExhausted, w.e.maxOutcomes)
	}
	return nil
}

func (w *distWalk) outcomes(d ast.Dist) ([]Outcome, error) {
	if err := w.step(); err != nil {
		return nil, err
	}
	switch d := d.(type) {
	case *ast.UniformDist:
		return w.e.uniformOutcomes(d)
	case *ast.DiscreteDist:
		return w.e.discreteOutcomes(d)
	case *ast.CombinedDist:
		if out, ok := w.outcomeMemo[d]; ok {
			return out, nil
		}
		left, err := w.outcomes(d.Left)
		if err != nil {
			return nil, err
		}
		right, err := w.outcomes(d.Right)
		if err != nil {
			return nil, err
		}
		if err := w.e.checkProduct(len(left), len(right)); err != nil {
			return nil, err
		}
		out := make([]Outcome, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				v, ok := addInt64(l.Value, r.Value)
				if !ok {
					return nil, fmt.Errorf("%w: %d + %d overflows", ErrInvalidDistribution, l.Value, r.Value)
				}
				out = append(out, Outcome{Value: v, Prob: l.Prob * r.Prob})
			}
		}
		w.outcomeMemo[d] = out
		return out, nil
	case *ast.ChainDist:
		return nil, fmt.Errorf("%w: %s", ErrUnimplemented, d.Dump())
	default:
		return nil, fmt.Errorf("%w: unsupported distribution %T", ErrTypeMismatch, d)
	}
}

// massTable returns the probability mass function of d: one entry per
// distinct value, sorted by value. Combined distributions are convolved
// table by table, so a sum of n uniforms grows linearly instead of as a
// cross product.
func (w *distWalk) massTable(d ast.Dist) ([]Outcome, error) {
	combined, ok := d.(*ast.CombinedDist)
	if !ok {
		out, err := w.outcomes(d)
		if err != nil {
			return nil, err
		}
		out = slices.Clone(out)
		slices.SortFunc(out, func(a, b Outcome) int { return cmp.Compare(a.Value, b.Value) })
		return out, nil
	}
	if err := w.step(); err != nil {
		return nil, err
	}
	if out, ok := w.massMemo[combined]; ok {
		return out, nil
	}

	left, err := w.massTable(combined.Left)
	if err != nil {
		return nil, err
	}
	right, err := w.massTable(combined.Right)
	if err != nil {
		return nil, err
	}
	if err := w.e.checkProduct(len(left), len(right)); err != nil {
		return nil, err
	}
	acc := map[int64]float64{}
	for _, l := range left {
		for _, r := range right {
			v, ok := addInt64(l.Value, r.Value)
			if !ok {
				return nil, fmt.Errorf("%w: %d + %d overflows", ErrInvalidDistribution, l.Value, r.Value)
			}
			acc[v] += l.Prob * r.Prob
		}
	}
	out := make([]Outcome, 0, len(acc))
	for v, p := range acc {
		out = append(out, Outcome{Value: v, Prob: p})
	}
	slices.SortFunc(out, func(a, b Outcome) int { return cmp.Compare(a.Value, b.Value) })
	w.massMemo[combined] = out
	return out, nil
}

// uniformBounds evaluates the bounds of d. span is hi-lo, so d has span+1
// outcomes.
func (e *Executor) uniformBounds(d *ast.UniformDist) (lo, hi int64, span uint64, err error) {
	lo, err = e.evalInt(d.Lo)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("uniform lower bound: %w", err)
	}
	hi, err = e.evalInt(d.Hi)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("uniform upper bound: %w", err)
	}
	if hi < lo {
		return 0, 0, 0, fmt.Errorf("%w: %s has its upper bound below its lower bound", ErrInvalidDistribution, d.Dump())
	}
	return lo, hi, uint64(hi) - uint64(lo), nil
}

func (e *Executor) uniformOutcomes(d *ast.UniformDist) ([]Outcome, error) {
	lo, _, span, err := e.uniformBounds(d)
	if err != nil {
		return nil, err
	}
	if span >= uint64(e.maxOutcomes) {
		return nil, fmt.Errorf("%w: %s has more than %d outcomes", ErrResourceExhausted, d.Dump(), e.maxOutcomes)
	}
	n := int(span) + 1
	p := 1 / float64(n)
	out := make([]Outcome, n)
	for i := range out {
		out[i] = Outcome{Value: lo + int64(i), Prob: p}
	}
	return out, nil
}

func (e *Executor) discreteOutcomes(d *ast.DiscreteDist) ([]Outcome, error) {
	out := make([]Outcome, 0, len(d.Pairs))
	seen := make(map[int64]struct{}, len(d.Pairs))
	for i, pair := range d.Pairs {
		v, err := e.evalInt(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("discrete value %d: %w", i+1, err)
		}
		p, err := e.Eval(pair.Prob)
		if err != nil {
			return nil, fmt.Errorf("discrete probability %d: %w", i+1, err)
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, Outcome{Value: v, Prob: p})
	}
	return out, nil
}

// checkProduct fails when combining tables of left and right entries would
// exceed the outcome limit. Combined nodes are not dumped; with shared
// subtrees their text grows exponentially.
func (e *Executor) checkProduct(left, right int) error {
	if left != 0 && right > e.maxOutcomes/left {
		return fmt.Errorf("%w: sum has %d x %d outcome pairs, limit is %d", ErrResourceExhausted, left, right, e.maxOutcomes)
	}
	return nil
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	s := a - b
	if (b < 0 && s < a) || (b > 0 && s > a) {
		return 0, false
	}
	return s, true
}
