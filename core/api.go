// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No rewriting logic here; stages live in their own packages.
//   - Every getter returns data the caller may keep without aliasing the Graph.

package core

// NewGraph creates a Graph holding a copy of triples with the given top.
//
// Implementation:
//   - Stage 1: Copy triples so later changes to the caller's slice are invisible.
//   - Stage 2: Store top verbatim (it may be empty for an empty graph).
//
// Complexity:
//   - Time O(T), Space O(T) for T triples.
func NewGraph(triples []Triple, top string) *Graph {
	cp := make([]Triple, len(triples))
	copy(cp, triples)

	return &Graph{top: top, triples: cp}
}

// Top returns the designated root variable.
// Complexity: O(1).
func (g *Graph) Top() string {
	return g.top
}

// Len returns the number of triples.
// Complexity: O(1).
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns a copy of the triple sequence in serialization order.
// Complexity: O(T).
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)

	return out
}

// At returns the i-th triple. It panics if i is out of range, like a slice index.
func (g *Graph) At(i int) Triple {
	return g.triples[i]
}

// Validate reports ErrEmptyVariable when a triple has an empty Source.
// Decoded graphs always pass; hand-built graphs may not.
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	for _, t := range g.triples {
		if t.Source == "" {
			return ErrEmptyVariable
		}
	}

	return nil
}
