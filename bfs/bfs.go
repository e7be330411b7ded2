// Package bfs provides breadth-first search over the node links of a core.Graph,
// returning link distances and visit order.
package bfs

import (
	"github.com/katalvlaran/norman/core"
)

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
//
// Steps:
//  1. Index neighbors in triple order; constants and instance triples are
//     not links.
//  2. Pop variables in FIFO order, recording each at its first (shortest)
//     depth.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vars := g.Variables()
	if !vars.Has(startID) {
		return nil, ErrStartVertexNotFound
	}

	next := make(map[string][]string, len(vars))
	for _, t := range g.Triples() {
		if t.IsInstance() || !vars.Has(t.Target) {
			continue
		}
		next[t.Source] = append(next[t.Source], t.Target)
		if o.Undirected {
			next[t.Target] = append(next[t.Target], t.Source)
		}
	}

	res := &BFSResult{
		Order: make([]string, 0, len(vars)),
		Depth: map[string]int{startID: 0},
	}
	queue := []string{startID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)
		for _, nbr := range next[id] {
			if _, seen := res.Depth[nbr]; !seen {
				res.Depth[nbr] = res.Depth[id] + 1
				queue = append(queue, nbr)
			}
		}
	}

	return res, nil
}
