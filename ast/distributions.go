package ast

import (
	"fmt"
	"strings"
)

// UniformDist is the inclusive integer range [Lo, Hi], every value equally likely.
type UniformDist struct {
	Lo, Hi Expr
}

func (UniformDist) dist() {}

func (d UniformDist) Dump() string {
	return fmt.Sprintf("uniform(%s, %s)", d.Lo.Dump(), d.Hi.Dump())
}

// DiscretePair is one declared value/probability pair.
type DiscretePair struct {
	Value Expr
	Prob  Expr
}

// DiscreteDist lists its outcomes explicitly. Probabilities are taken as
// declared, without normalization.
type DiscreteDist struct {
	Pairs []DiscretePair
}

func (DiscreteDist) dist() {}

func (d DiscreteDist) Dump() string {
	parts := make([]string, 0, 2*len(d.Pairs))
	for _, p := range d.Pairs {
		parts = append(parts, p.Value.Dump(), p.Prob.Dump())
	}
	return "discrete(" + strings.Join(parts, ", ") + ")"
}

// CombinedDist is the sum of two independent distributions.
type CombinedDist struct {
	Left, Right Dist
}

func (CombinedDist) dist() {}

func (d CombinedDist) Dump() string {
	return fmt.Sprintf("(%s + %s)", d.Left.Dump(), d.Right.Dump())
}

// ChainDist repeats Head Count times then joins Tail. Reserved: it parses but
// does not evaluate.
type ChainDist struct {
	Head  Dist
	Count uint64
	Tail  Dist
}

func (ChainDist) dist() {}

func (d ChainDist) Dump() string {
	return fmt.Sprintf("chain(%s, %d, %s)", d.Head.Dump(), d.Count, d.Tail.Dump())
}
