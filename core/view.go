// File: view.go
// Role: Non-mutating comparisons and derived graphs (Equal, Equivalent, Map, WithTop).
// Determinism:
//   - Map preserves triple order; a nil result drops the triple.

package core

// Equal reports whether g and other have the same top and the same triple
// sequence. Nil graphs are equal only to each other.
// Complexity: O(T).
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.top != other.top || len(g.triples) != len(other.triples) {
		return false
	}
	for i := range g.triples {
		if g.triples[i] != other.triples[i] {
			return false
		}
	}

	return true
}

// Equivalent reports whether g and other have the same top and the same
// triple multiset, ignoring order.
// Complexity: O(T).
func (g *Graph) Equivalent(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.top != other.top || len(g.triples) != len(other.triples) {
		return false
	}
	counts := make(map[Triple]int, len(g.triples))
	for _, t := range g.triples {
		counts[t]++
	}
	for _, t := range other.triples {
		counts[t]--
		if counts[t] < 0 {
			return false
		}
	}

	return true
}

// Map builds a new Graph by applying fn to every triple in order and
// concatenating the results. Returning nil drops the triple.
// Complexity: O(T) plus the cost of fn.
func (g *Graph) Map(fn func(Triple) []Triple) *Graph {
	out := make([]Triple, 0, len(g.triples))
	for _, t := range g.triples {
		out = append(out, fn(t)...)
	}

	return &Graph{top: g.top, triples: out}
}

// WithTop returns a copy of g rooted at top.
func (g *Graph) WithTop(top string) *Graph {
	return NewGraph(g.triples, top)
}
