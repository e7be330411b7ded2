// File: methods_edges.go
// Role: Triple-level queries: Instances/Edges/Attributes/TriplesFrom/Targets.
// Determinism:
//   - Every query returns triples in serialization order.
// AI-HINT (file):
//   - Edges() and Attributes() partition the non-instance triples by whether
//     the target is a variable of the graph.

package core

// Filter returns the triples for which keep returns true, in order.
// Complexity: O(T).
func (g *Graph) Filter(keep func(Triple) bool) []Triple {
	out := make([]Triple, 0, len(g.triples))
	for _, t := range g.triples {
		if keep(t) {
			out = append(out, t)
		}
	}

	return out
}

// Instances returns every instance triple.
func (g *Graph) Instances() []Triple {
	return g.Filter(Triple.IsInstance)
}

// Edges returns the non-instance triples whose target is a variable.
// Complexity: O(T).
func (g *Graph) Edges() []Triple {
	vars := g.Variables()

	return g.Filter(func(t Triple) bool {
		return !t.IsInstance() && vars.Has(t.Target)
	})
}

// Attributes returns the non-instance triples whose target is a constant.
// Complexity: O(T).
func (g *Graph) Attributes() []Triple {
	vars := g.Variables()

	return g.Filter(func(t Triple) bool {
		return !t.IsInstance() && !vars.Has(t.Target)
	})
}

// TriplesFrom returns every triple whose Source is v, instance triples included.
func (g *Graph) TriplesFrom(v string) []Triple {
	return g.Filter(func(t Triple) bool { return t.Source == v })
}

// Targets returns the set of Targets of non-instance triples. A node in this
// set is reachable through some inbound relation.
// Complexity: O(T).
func (g *Graph) Targets() VarSet {
	vs := make(VarSet)
	for _, t := range g.triples {
		if !t.IsInstance() {
			vs.Add(t.Target)
		}
	}

	return vs
}
