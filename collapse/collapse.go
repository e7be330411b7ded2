package collapse

import (
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/mapping"
)

// Agenda finds every collapsible node of g and plans its replacement.
//
// Steps per instance triple (src, instance, concept) with patterns:
//  1. Skip fixed nodes (top or target of a non-instance triple).
//  2. Index src's non-instance triples by relation, last wins.
//  3. Try patterns in table order: both roles present, not both used,
//     source role pointing at a variable. Emit
//     (rels[s].Target, relation, rels[t].Target, rels[t].Inverted) and
//     record the inverted one of the two as incoming, source first.
//  4. Keep the plan only if every indexed relation was used.
//
// A later instance triple of the same node replaces an earlier plan.
func Agenda(g *core.Graph, table mapping.Dereifications) (map[string]Agendum, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	vars := g.Variables()
	fixed := g.Targets()
	fixed.Add(g.Top())

	agenda := make(map[string]Agendum)
	for _, inst := range g.Instances() {
		patterns, ok := table[inst.Target]
		if !ok || fixed.Has(inst.Source) {
			continue
		}

		rels := make(map[string]core.Triple)
		for _, t := range g.TriplesFrom(inst.Source) {
			if !t.IsInstance() {
				rels[t.Relation] = t
			}
		}

		used := make(map[string]bool, len(rels))
		var (
			agendum  []core.Triple
			incoming *core.Triple
		)
		for _, p := range patterns {
			src, okS := rels[p.SourceRole]
			tgt, okT := rels[p.TargetRole]
			if !okS || !okT {
				continue
			}
			if used[p.SourceRole] && used[p.TargetRole] {
				continue
			}
			if !vars.Has(src.Target) {
				continue
			}
			agendum = append(agendum, core.Triple{
				Source:   src.Target,
				Relation: p.Relation,
				Target:   tgt.Target,
				Inverted: tgt.Inverted,
			})
			used[p.SourceRole] = true
			used[p.TargetRole] = true
			switch {
			case src.Inverted:
				incoming = &src
			case tgt.Inverted:
				incoming = &tgt
			}
		}

		if len(used) != len(rels) {
			continue
		}
		if incoming == nil {
			return nil, &MismatchError{Node: inst.Source, Concept: inst.Target}
		}
		agenda[inst.Source] = Agendum{
			Node:     inst.Source,
			Concept:  inst.Target,
			Incoming: *incoming,
			Triples:  agendum,
		}
	}

	return agenda, nil
}

// Collapse replaces every collapsible node of g by the relations its
// patterns describe. g is not modified.
func Collapse(g *core.Graph, table mapping.Dereifications) (Result, error) {
	agenda, err := Agenda(g, table)
	if err != nil {
		return Result{}, err
	}

	counts := make(map[string]int)
	spliced := make(map[string]bool, len(agenda))
	out := g.Map(func(t core.Triple) []core.Triple {
		a, ok := agenda[t.Source]
		if !ok {
			return []core.Triple{t}
		}
		if t != a.Incoming || spliced[a.Node] {
			return nil
		}
		spliced[a.Node] = true
		counts[a.Concept]++

		return a.Triples
	})

	return Result{Graph: out, Counts: counts}, nil
}
