// Package bfs provides options and error definitions
// for breadth-first search over the node links of a core.Graph.
package bfs

import (
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start variable is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Undirected follows links in both directions, which measures depth in
	// the PENMAN tree rather than along logical Source→Target links.
	Undirected bool
}

// DefaultOptions returns a BFSOptions following logical links only.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithUndirected follows links in both directions.
func WithUndirected() Option {
	return func(o *BFSOptions) {
		o.Undirected = true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: variables visited, in visit sequence.
//   - Depth: map from variable to its distance (in links) from the start.
type BFSResult struct {
	Order []string
	Depth map[string]int
}

// MaxDepth returns the largest depth reached (0 for a lone start variable).
func (r *BFSResult) MaxDepth() int {
	deepest := 0
	for _, d := range r.Depth {
		if d > deepest {
			deepest = d
		}
	}

	return deepest
}
