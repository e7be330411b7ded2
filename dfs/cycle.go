// File: cycle.go
// Role: Directed cycle detection over logical links (Source→Target).
// AMR graphs are usually acyclic in logical direction; a cycle signals a
// reentrancy that points back up the tree (e.g. relative clauses).

package dfs

import (
	"github.com/katalvlaran/norman/core"
)

// HasCycle reports whether g contains a directed cycle among its links, and
// returns the first cycle found as a closed path [v0, …, v0].
// Self-links (a, r, a) count as cycles of length one.
//
// Steps:
//  1. Index links in logical direction.
//  2. Three-color DFS from every White variable in sorted order.
//  3. A link into a Gray variable closes a cycle; reconstruct it from the path.
//
// Complexity: O(V + T).
func HasCycle(g *core.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	links := buildLinks(g, false)
	state := make(map[string]int)
	var path []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		state[id] = Gray
		path = append(path, id)
		for _, l := range links[id] {
			switch state[l.to] {
			case White:
				if visit(l.to) {
					return true
				}
			case Gray:
				cycle = closeCycle(path, l.to)
				return true
			}
		}
		path = path[:len(path)-1]
		state[id] = Black

		return false
	}

	for _, v := range g.Variables().Sorted() {
		if state[v] == White && visit(v) {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// closeCycle extracts path[idx(start):] and appends start.
func closeCycle(path []string, start string) []string {
	idx := 0
	for i, v := range path {
		if v == start {
			idx = i
			break
		}
	}
	out := append([]string(nil), path[idx:]...)

	return append(out, start)
}
