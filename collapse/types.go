// Package collapse turns mediating nodes back into single relations, the
// constrained inverse of package reify.
//
// A node is collapsed only when every rule below holds; otherwise its
// triples are left untouched:
//
//   - its concept has patterns in the dereification table;
//   - it is not fixed: neither the top nor the target of any non-instance
//     triple;
//   - every non-instance relation of the node is consumed by some pattern
//     (completeness gate, no partial collapse);
//   - no pattern builds a relation out of a constant source.
//
// The replacement triples are spliced where the node's incoming triple
// (the one written as an inverse role) used to be; the node's instance and
// remaining triples are dropped.
//
// A node that passes the gate without an incoming triple means the table
// and graph disagree in a way decoding can never produce; Collapse reports
// it as *MismatchError and the run should stop.
//
// Duplicate relations at one node: the node's relations are indexed by
// name and the last triple of a name wins. The earlier triple is dropped
// with the node when it collapses.
//
// Complexity:
//
//	– Time:  O(T + C·P) where C = candidates and P = patterns per concept.
//	– Space: O(T).
//
// Errors:
//
//	– core.ErrNilGraph if the graph is nil.
//	– *MismatchError (ErrNoIncomingTriple) on an internal inconsistency.
package collapse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/norman/core"
)

// ErrNoIncomingTriple is wrapped by every *MismatchError.
var ErrNoIncomingTriple = errors.New("collapse: eligible node has no incoming triple")

// MismatchError names the node that passed the completeness gate without an
// incoming triple.
type MismatchError struct {
	Node    string
	Concept string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("collapse: node %q (%s) has no incoming triple", e.Node, e.Concept)
}

// Unwrap lets errors.Is(err, ErrNoIncomingTriple) match.
func (e *MismatchError) Unwrap() error { return ErrNoIncomingTriple }

// Agendum is the planned replacement of one mediating node.
type Agendum struct {
	// Node is the mediating variable being removed.
	Node string

	// Concept is the node's former concept.
	Concept string

	// Incoming is the triple whose position receives Triples.
	Incoming core.Triple

	// Triples are the collapsed relations, in pattern order.
	Triples []core.Triple
}

// Result is the rewritten graph plus per-concept collapse counts.
type Result struct {
	Graph  *core.Graph
	Counts map[string]int
}
