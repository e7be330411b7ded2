// Package core provides the immutable AMR graph model shared by every
// norman stage.
//
// A Graph G = (T, top) is an ordered sequence of triples T and a top variable:
//
//   - Triple{Source, Relation, Target, Inverted}: comparable, usable as a map key
//   - Relation "instance" assigns a concept: (b, instance, boy)
//   - Inverted keeps the surface direction: (b, ARG0, w, Inverted) is
//     written "w … :ARG0-of b" but still means b -ARG0-> w
//
// Why immutable?
//
//   - Each stage (decode, reify, collapse, conceptualize) returns a fresh
//     Graph, so callers can compare before/after without extra copies.
//   - Diagnostics never ride on the Graph; stages return them separately.
//
// Node model:
//
//	Variables()          // every Source ∪ {top}, O(T)
//	IsVariable(id)       // membership, O(T)
//	Concept(v)           // first instance target
//	VarSet.Mint(c, p)    // smallest free name: p | first letter of c | "_", then p1, p2…
//
// Triple queries (all order-preserving):
//
//	Triples(), Instances(), Edges(), Attributes(), TriplesFrom(v), Filter(fn)
//
// Comparison:
//
//	Equal(o)       // same top, same sequence
//	Equivalent(o)  // same top, same multiset
//
// Construction:
//
//	NewGraph(triples, top)          // copies triples
//	NewBuilder(top).Instance(…).Add(…).Graph()
//	g.Map(fn)                       // order-preserving rewrite
//
// Errors:
//
//	ErrNilGraph      – nil *Graph
//	ErrEmptyVariable – triple with empty Source
package core
