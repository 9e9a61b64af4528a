package executor

import (
	"maps"
	"slices"

	"go.creack.net/distlang/ast"
)

// Env holds the bindings of one program run. A name is bound either to a
// number or to a distribution, never both.
type Env struct {
	vars  map[string]float64
	dists map[string]ast.Dist
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{
		vars:  map[string]float64{},
		dists: map[string]ast.Dist{},
	}
}

// Number returns the numeric binding of name.
func (env *Env) Number(name string) (float64, bool) {
	v, ok := env.vars[name]
	return v, ok
}

// Dist returns the distribution binding of name.
func (env *Env) Dist(name string) (ast.Dist, bool) {
	d, ok := env.dists[name]
	return d, ok
}

// SetNumber binds name to v, replacing any distribution binding.
func (env *Env) SetNumber(name string, v float64) {
	delete(env.dists, name)
	env.vars[name] = v
}

// SetDist binds name to d, replacing any numeric binding.
func (env *Env) SetDist(name string, d ast.Dist) {
	delete(env.vars, name)
	env.dists[name] = d
}

// Names returns every bound name, sorted.
func (env *Env) Names() []string {
	names := slices.Collect(maps.Keys(env.vars))
	names = slices.AppendSeq(names, maps.Keys(env.dists))
	slices.Sort(names)
	return names
}
