// Package core defines the central Triple and Graph types of norman,
// plus the variable set used to mint fresh node identifiers.
//
// A Graph is an immutable value: an ordered sequence of triples and a
// designated top variable. Every rewriting stage (reify, collapse,
// conceptualize) builds a new Graph instead of mutating its input, so a
// *Graph may be shared freely between stages and goroutines.
//
// This file declares Triple, Graph, the instance relation constant and the
// sentinel errors of the package.
//
// Errors:
//
//	ErrNilGraph      - graph pointer is nil.
//	ErrEmptyVariable - a triple or top uses the empty variable.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil *Graph was passed where a value was required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVariable indicates a triple whose Source is the empty string.
	ErrEmptyVariable = errors.New("core: empty variable")
)

// InstanceRelation is the relation establishing a node's concept.
// Triples carrying it are never inverted.
const InstanceRelation = "instance"

// Triple is one directed, labeled edge or type assignment.
//
// Inverted records that the triple was read (or should be written) in the
// inverse surface form, e.g. "b :ARG0-of a" for (a, ARG0, b). It changes the
// serialization direction only; Source→Target is always the logical direction.
//
// Two triples are equal iff all four fields match, so Triple is comparable
// and may be used as a map key.
type Triple struct {
	// Source is the variable the relation starts from.
	Source string

	// Relation is the role name without the leading colon.
	Relation string

	// Target is a variable of the graph or a constant (quoted string or atom).
	Target string

	// Inverted is true when the surface form is the inverse role.
	Inverted bool
}

// IsInstance reports whether t assigns a concept to its source.
func (t Triple) IsInstance() bool { return t.Relation == InstanceRelation }

// Graph is an ordered sequence of triples with a designated top variable.
//
// Invariants:
//   - triples is never mutated after construction; accessors return copies.
//   - the node set is derived on demand (Variables), never stored.
//   - top need not carry an instance triple on malformed input.
type Graph struct {
	top     string   // designated root variable
	triples []Triple // serialization order
}
