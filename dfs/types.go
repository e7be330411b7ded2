// Package dfs defines types and options for depth-first search over the
// node links of a core.Graph: the discovery hook, link filtering and the
// direction links are followed in.
package dfs

import (
	"errors"

	"github.com/katalvlaran/norman/core"
)

// VertexState represents the DFS visitation state of a variable.
const (
	White = iota // White: the variable has not been visited yet.
	Gray         // Gray: the variable is on the recursion stack.
	Black        // Black: the variable and all its descendants are done.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start variable is not a node of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+T) when filters and hooks are O(1).
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when a variable is discovered (pre-order),
	// before any of its links are followed.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// FilterTriple, if non-nil, is called for every candidate link when it
	// is reached. Return false to skip it.
	FilterTriple func(t core.Triple) bool

	// SurfaceDirection follows inverted triples from Target to Source, the
	// direction PENMAN writes them in.
	SurfaceDirection bool
}

// DefaultOptions returns a DFSOptions with no hooks, no filter and
// logical (Source→Target) links.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithFilterTriple returns an Option that filters links by their triple.
// The filter is consulted lazily, so it may depend on state that OnVisit
// changes during the walk.
func WithFilterTriple(fn func(t core.Triple) bool) Option {
	return func(o *DFSOptions) {
		o.FilterTriple = fn
	}
}

// WithSurfaceDirection returns an Option that follows every link in the
// direction it is written: inverted triples lead from Target to Source.
func WithSurfaceDirection() Option {
	return func(o *DFSOptions) {
		o.SurfaceDirection = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records variables in the sequence they were discovered (pre-order).
	Order []string

	// Visited flags which variables were reached.
	Visited map[string]bool
}
