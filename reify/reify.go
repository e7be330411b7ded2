package reify

import (
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/mapping"
)

// Reify replaces every triple whose relation is in table by a mediating node.
// Other triples pass through in order. g is not modified.
//
// Steps:
//  1. Collect the variables of g once; minting adds to this set.
//  2. Walk triples in order; expand matches into three triples.
//  3. Count reifications per relation.
func Reify(g *core.Graph, table mapping.Reifications, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, core.ErrNilGraph
	}
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	vars := g.Variables()
	counts := make(map[string]int)
	out := g.Map(func(t core.Triple) []core.Triple {
		if t.IsInstance() {
			return []core.Triple{t}
		}
		r, ok := table[t.Relation]
		if !ok {
			return []core.Triple{t}
		}
		counts[t.Relation]++
		v := vars.Mint(r.Concept, o.Prefix)

		return []core.Triple{
			{Source: v, Relation: core.InstanceRelation, Target: r.Concept},
			{Source: v, Relation: r.SourceRole, Target: t.Source, Inverted: !t.Inverted},
			{Source: v, Relation: r.TargetRole, Target: t.Target, Inverted: t.Inverted},
		}
	})

	return Result{Graph: out, Counts: counts}, nil
}
