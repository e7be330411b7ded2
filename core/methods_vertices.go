// File: methods_vertices.go
// Role: Node-level queries: Variables/IsVariable/Concept, plus the VarSet used
//       to mint fresh variables during a rewrite pass.
// Determinism:
//   - VarSet.Sorted() returns variables in ascending byte order.
//   - Mint() always picks the smallest free suffix.
// AI-HINT (file):
//   - A variable is anything that appears as a Source, or the top. A name used
//     only as a Target is a constant, even if it looks like a variable.
//   - Mint() adds the new name to the set immediately; reuse one VarSet for a
//     whole pass so consecutive mints never collide.

package core

import (
	"sort"
	"strconv"
	"unicode"
)

// PlaceholderPrefix is used when neither a caller prefix nor a letter in the
// concept is available to derive a variable name from.
const PlaceholderPrefix = "_"

// VarSet is a set of variable names.
type VarSet map[string]struct{}

// Has reports membership of v.
func (vs VarSet) Has(v string) bool {
	_, ok := vs[v]

	return ok
}

// Add inserts v into the set.
func (vs VarSet) Add(v string) {
	vs[v] = struct{}{}
}

// Sorted returns the members in ascending order.
// Complexity: O(V·log V).
func (vs VarSet) Sorted() []string {
	out := make([]string, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Equal reports whether vs and other hold exactly the same members.
func (vs VarSet) Equal(other VarSet) bool {
	if len(vs) != len(other) {
		return false
	}
	for v := range vs {
		if !other.Has(v) {
			return false
		}
	}

	return true
}

// Mint returns a fresh variable and records it in the set.
//
// Steps:
//  1. base = prefix if non-empty, else the first letter of concept,
//     else PlaceholderPrefix.
//  2. Try base, then base1, base2, … until a name is free.
//  3. Add the result to vs.
//
// Complexity: O(k) set lookups where k is the number of taken suffixes.
func (vs VarSet) Mint(concept, prefix string) string {
	base := prefix
	if base == "" {
		base = PlaceholderPrefix
		for _, r := range concept {
			if unicode.IsLetter(r) {
				base = string(r)
				break
			}
		}
	}

	v := base
	for i := 1; vs.Has(v); i++ {
		v = base + strconv.Itoa(i)
	}
	vs.Add(v)

	return v
}

// Variables returns a fresh set of every Source plus the top.
// The caller owns the returned set and may Mint into it.
// Complexity: O(T).
func (g *Graph) Variables() VarSet {
	vs := make(VarSet, len(g.triples)/2+1)
	if g.top != "" {
		vs.Add(g.top)
	}
	for _, t := range g.triples {
		vs.Add(t.Source)
	}

	return vs
}

// IsVariable reports whether id is a node of g (a Source or the top).
// Complexity: O(T); build Variables() once when testing many ids.
func (g *Graph) IsVariable(id string) bool {
	if id == g.top && id != "" {
		return true
	}
	for _, t := range g.triples {
		if t.Source == id {
			return true
		}
	}

	return false
}

// Concept returns the target of the first instance triple of v, and whether
// one exists. An empty concept is reported as present.
func (g *Graph) Concept(v string) (string, bool) {
	for _, t := range g.triples {
		if t.Source == v && t.IsInstance() {
			return t.Target, true
		}
	}

	return "", false
}
