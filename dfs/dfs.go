// Package dfs implements depth-first search over the node links of a core.Graph.
// A link is a non-instance triple whose Source and Target are both variables.
//
// Key features:
//   - DFS(g, startID, opts...): pre-order walk from one variable
//   - Direction: logical (Source→Target) by default, as written via WithSurfaceDirection
//   - Hooks: OnVisit (pre-order) with error abort, lazy FilterTriple
//
// Complexity:
//
//   - Time:   O(V + T) (V = variables, T = triples), plus hooks and filters.
//   - Memory: O(V + T) for the link index, recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is not a variable.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/norman/core"
)

// link is one traversable step of the index.
type link struct {
	to     string
	triple core.Triple
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	links map[string][]link // variable → outgoing links, triple order
	opts  DFSOptions        // traversal options
	res   *DFSResult        // result collector
}

// buildLinks indexes the links of g in triple order.
// With surface set, inverted triples are indexed from Target to Source.
func buildLinks(g *core.Graph, surface bool) map[string][]link {
	vars := g.Variables()
	links := make(map[string][]link, len(vars))
	for _, t := range g.Triples() {
		if t.IsInstance() || !vars.Has(t.Target) {
			continue
		}
		if surface && t.Inverted {
			links[t.Target] = append(links[t.Target], link{to: t.Source, triple: t})
			continue
		}
		links[t.Source] = append(links[t.Source], link{to: t.Target, triple: t})
	}

	return links
}

// DFS performs depth-first search on graph g from startID.
// Returns DFSResult or the error of an aborting hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.IsVariable(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result
	res := &DFSResult{Visited: make(map[string]bool)}
	walker := &dfsWalker{links: buildLinks(g, dopts.SurfaceDirection), opts: dopts, res: res}

	// 5. Traverse
	if err := walker.traverse(startID); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits variable id, then recurses into its links in triple order.
func (w *dfsWalker) traverse(id string) error {
	// 1. Mark visited and record discovery
	w.res.Visited[id] = true
	w.res.Order = append(w.res.Order, id)

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	// 3. Explore each link; the filter sees state left by earlier visits
	for _, l := range w.links[id] {
		if w.res.Visited[l.to] {
			continue
		}
		if w.opts.FilterTriple != nil && !w.opts.FilterTriple(l.triple) {
			continue
		}
		if err := w.traverse(l.to); err != nil {
			return err
		}
	}

	return nil
}
