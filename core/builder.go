// File: builder.go
// Role: Incremental construction of a Graph (used by the decoder and by tests).
// Concurrency:
//   - A Builder is not safe for concurrent use; the Graph it returns is.

package core

// Builder accumulates triples in order and produces an immutable Graph.
// The zero value is ready to use.
type Builder struct {
	top     string
	triples []Triple
}

// NewBuilder returns a Builder rooted at top.
func NewBuilder(top string) *Builder {
	return &Builder{top: top}
}

// SetTop sets the root variable.
func (b *Builder) SetTop(top string) *Builder {
	b.top = top

	return b
}

// Add appends a non-inverted triple.
func (b *Builder) Add(source, relation, target string) *Builder {
	b.triples = append(b.triples, Triple{Source: source, Relation: relation, Target: target})

	return b
}

// AddInverted appends a triple whose surface form is the inverse role.
func (b *Builder) AddInverted(source, relation, target string) *Builder {
	b.triples = append(b.triples, Triple{Source: source, Relation: relation, Target: target, Inverted: true})

	return b
}

// Instance appends (v, instance, concept).
func (b *Builder) Instance(v, concept string) *Builder {
	return b.Add(v, InstanceRelation, concept)
}

// Append appends triples verbatim.
func (b *Builder) Append(ts ...Triple) *Builder {
	b.triples = append(b.triples, ts...)

	return b
}

// Len returns the number of triples added so far.
func (b *Builder) Len() int {
	return len(b.triples)
}

// Graph returns a Graph snapshot; the Builder may keep being used.
func (b *Builder) Graph() *Graph {
	return NewGraph(b.triples, b.top)
}
