// Package conceptualize guarantees that every node of a graph is typed and
// every relation points at a node.
//
// One order-preserving pass:
//
//  1. Instance triples with an empty concept are dropped.
//  2. A non-instance triple whose target is a constant gets a fresh
//     anonymous variable as target, followed by (new, instance, constant).
//  3. Only the first instance triple of each node is kept, and
//     (v, instance, MissingConcept) is appended for variables still untyped.
//
// The result is a fixed point: Conceptualize(Conceptualize(g)) equals
// Conceptualize(g).
//
//	:polarity -    →    :polarity (_ / -)
package conceptualize

import (
	"github.com/katalvlaran/norman/core"
)

// DefaultMissingConcept types nodes that carry no instance triple.
const DefaultMissingConcept = "amr-missing"

// Count keys of Result.Counts.
const (
	CountDroppedEmpty = "dropped-empty"
	CountPromoted     = "promoted"
	CountDuplicate    = "duplicate"
	CountMissing      = "missing"
)

// Result is the rewritten graph plus per-step counts.
type Result struct {
	Graph  *core.Graph
	Counts map[string]int
}

// Options configures Conceptualize.
type Options struct {
	// MissingConcept types untyped variables; empty disables step 3's append
	// and the promotion of empty constants, so the result may then keep
	// untyped variables.
	MissingConcept string

	// Prefix is the base of promoted variables.
	Prefix string
}

// Option configures Conceptualize.
type Option func(*Options)

// WithMissingConcept overrides DefaultMissingConcept.
func WithMissingConcept(c string) Option {
	return func(o *Options) { o.MissingConcept = c }
}

// WithPrefix overrides core.PlaceholderPrefix for promoted variables.
func WithPrefix(p string) Option {
	return func(o *Options) {
		if p != "" {
			o.Prefix = p
		}
	}
}

// Conceptualize returns a copy of g in which every variable has exactly one
// non-empty concept and every relation target is a variable.
//
// The empty constant is promoted to an untyped node only when a missing
// concept is configured; otherwise it stays a constant.
func Conceptualize(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, core.ErrNilGraph
	}
	o := Options{MissingConcept: DefaultMissingConcept, Prefix: core.PlaceholderPrefix}
	for _, fn := range opts {
		fn(&o)
	}

	// variables of the input, before empty instances disappear
	vars := g.Variables()
	inputVars := vars.Sorted()
	counts := make(map[string]int)
	typed := make(core.VarSet)

	out := g.Map(func(t core.Triple) []core.Triple {
		if t.IsInstance() {
			switch {
			case t.Target == "":
				counts[CountDroppedEmpty]++
				return nil
			case typed.Has(t.Source):
				counts[CountDuplicate]++
				return nil
			}
			typed.Add(t.Source)
			return []core.Triple{t}
		}
		if vars.Has(t.Target) || (t.Target == "" && o.MissingConcept == "") {
			return []core.Triple{t}
		}

		counts[CountPromoted]++
		constant := t.Target
		t.Target = vars.Mint("", o.Prefix)
		concept := constant
		if concept == "" {
			concept = o.MissingConcept
		}
		typed.Add(t.Target)

		return []core.Triple{t, {Source: t.Target, Relation: core.InstanceRelation, Target: concept}}
	})

	if o.MissingConcept == "" {
		return Result{Graph: out, Counts: counts}, nil
	}
	b := core.NewBuilder(out.Top()).Append(out.Triples()...)
	for _, v := range inputVars {
		if !typed.Has(v) {
			counts[CountMissing]++
			b.Instance(v, o.MissingConcept)
		}
	}

	return Result{Graph: b.Graph(), Counts: counts}, nil
}
