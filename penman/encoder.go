// File: encoder.go
// Role: Serialize a core.Graph back to PENMAN notation or to a triple list.
// Layout:
//   - Each triple is anchored at its Source, or at its Target when Inverted.
//   - From top, preferred anchors are explored with dfs.DFS in triple order.
//   - Triples left over are flipped onto an already placed node.
//   - A node is written in full the first time it is reached; later
//     mentions are bare variables (reentrancies).

package penman

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/dfs"
)

// DefaultIndent is the indentation used for corpus output.
const DefaultIndent = 6

// Compact disables line breaks when passed to WithIndent.
const Compact = -1

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithEncoderRoles sets the canonicalizer used to spell roles.
func WithEncoderRoles(r *Roles) EncoderOption {
	return func(e *Encoder) {
		if r != nil {
			e.roles = r
		}
	}
}

// WithIndent sets the indentation width per nesting level; a negative
// width writes each graph on one line.
func WithIndent(n int) EncoderOption {
	return func(e *Encoder) { e.indent = n }
}

// WithMissingConcept types every variable lacking an instance triple with
// concept before layout. The empty string disables it.
func WithMissingConcept(concept string) EncoderOption {
	return func(e *Encoder) { e.missing = concept }
}

// Encoder writes graphs as PENMAN text.
type Encoder struct {
	roles   *Roles
	indent  int
	missing string
}

// NewEncoder returns an Encoder with DefaultRoles and DefaultIndent.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{roles: DefaultRoles(), indent: DefaultIndent}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// layout is the placement of triples under anchor variables.
type layout struct {
	triples []core.Triple
	under   map[string][]int // anchor → triple indices in write order
	forward []bool           // written Source→Target at its anchor
}

// Encode serializes g. It fails with ErrEmptyGraph when g has no top and
// with ErrDisconnected when some variable cannot be reached from top.
func (e *Encoder) Encode(g *core.Graph) (string, error) {
	if g == nil {
		return "", core.ErrNilGraph
	}
	if g.Top() == "" {
		return "", ErrEmptyGraph
	}
	g = e.typed(g)

	lay, err := place(g)
	if err != nil {
		return "", err
	}
	if len(lay.under[g.Top()]) == 0 {
		return "(" + g.Top() + ")", nil
	}

	return e.render(lay, g.Top(), 0, make(map[string]bool)), nil
}

// typed appends (v, instance, missing) for every untyped variable.
func (e *Encoder) typed(g *core.Graph) *core.Graph {
	if e.missing == "" {
		return g
	}
	typed := make(core.VarSet)
	for _, t := range g.Instances() {
		typed.Add(t.Source)
	}
	b := core.NewBuilder(g.Top()).Append(g.Triples()...)
	for _, v := range g.Variables().Sorted() {
		if !typed.Has(v) {
			b.Instance(v, e.missing)
		}
	}

	return b.Graph()
}

// place assigns every triple to an anchor variable.
//
// Steps:
//  1. Index preferred anchors (Source, or Target when Inverted) and the
//     opposite "dispreferred" end of every non-instance triple.
//  2. Walk preferred anchors depth-first from top; each node places its
//     preferred triples when discovered.
//  3. While triples remain, flip the first remaining triple found at a
//     placed node (in discovery order) and walk on from its other end.
func place(g *core.Graph) (*layout, error) {
	triples := g.Triples()
	vars := g.Variables()
	preferred := make(map[string][]int)
	dispreferred := make(map[string][]int)
	for i, t := range triples {
		switch {
		case t.IsInstance():
			preferred[t.Source] = append(preferred[t.Source], i)
		case t.Inverted:
			preferred[t.Target] = append(preferred[t.Target], i)
			dispreferred[t.Source] = append(dispreferred[t.Source], i)
		default:
			preferred[t.Source] = append(preferred[t.Source], i)
			dispreferred[t.Target] = append(dispreferred[t.Target], i)
		}
	}

	lay := &layout{triples: triples, under: make(map[string][]int), forward: make([]bool, len(triples))}
	placed := make([]bool, len(triples))
	remaining := len(triples)
	explored := make(core.VarSet)
	var order []string

	put := func(i int, anchor string, flip bool) {
		placed[i] = true
		remaining--
		lay.forward[i] = triples[i].Inverted == flip
		lay.under[anchor] = append(lay.under[anchor], i)
	}

	explore := func(v string) error {
		res, err := dfs.DFS(g, v,
			dfs.WithSurfaceDirection(),
			dfs.WithOnVisit(func(id string) error {
				explored.Add(id)
				for _, i := range preferred[id] {
					if !placed[i] {
						put(i, id, false)
					}
				}
				return nil
			}),
			dfs.WithFilterTriple(func(t core.Triple) bool {
				if t.Inverted {
					return !explored.Has(t.Source)
				}
				return !explored.Has(t.Target)
			}),
		)
		if err != nil {
			return fmt.Errorf("penman: encode: %w", err)
		}
		order = append(order, res.Order...)

		return nil
	}

	if err := explore(g.Top()); err != nil {
		return nil, err
	}
	for remaining > 0 {
		flipped := false
		for k := 0; k < len(order) && !flipped; k++ {
			v := order[k]
			for _, i := range dispreferred[v] {
				if placed[i] {
					continue
				}
				put(i, v, true)
				flipped = true
				child := triples[i].Source
				if triples[i].Inverted {
					child = triples[i].Target
				}
				if vars.Has(child) && !explored.Has(child) {
					if err := explore(child); err != nil {
						return nil, err
					}
				}
				break
			}
		}
		if !flipped {
			var lost []string
			for _, v := range vars.Sorted() {
				if !explored.Has(v) {
					lost = append(lost, v)
				}
			}
			return nil, fmt.Errorf("%w: unreachable from %s: %s", ErrDisconnected, g.Top(), strings.Join(lost, ", "))
		}
	}

	return lay, nil
}

// render writes the node v and everything anchored below it.
func (e *Encoder) render(lay *layout, v string, offset int, seen map[string]bool) string {
	if seen[v] || len(lay.under[v]) == 0 {
		return v
	}
	seen[v] = true

	if e.indent >= 0 {
		offset += e.indent
	}

	var concept string
	var branches []string
	for _, i := range lay.under[v] {
		t := lay.triples[i]
		if t.IsInstance() {
			if t.Target == "" {
				continue
			}
			if concept == "" {
				concept = "/ " + t.Target
				continue
			}
			branches = append(branches, ":"+core.InstanceRelation+" "+t.Target)
			continue
		}
		role, child := e.roles.Surface(t.Relation, false), t.Target
		if !lay.forward[i] {
			role, child = e.roles.Surface(t.Relation, true), t.Source
		}
		branches = append(branches, ":"+role+" "+e.render(lay, child, offset, seen))
	}
	if concept != "" {
		branches = append([]string{concept}, branches...)
	}

	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(v)
	if len(branches) > 0 {
		sb.WriteString(" ")
		delim := " "
		if e.indent >= 0 {
			delim = "\n" + strings.Repeat(" ", offset)
		}
		sb.WriteString(strings.Join(branches, delim))
	}
	sb.WriteString(")")

	return sb.String()
}

// EncodeTriples writes g as a conjunction of logical triples, one per line:
//
//	top(w) ^
//	instance(w, want-01) ^
//	ARG0(w, b)
//
// Triples are normalized with the encoder's Roles first, so the listed
// relations are the canonical ones a decode would produce.
func (e *Encoder) EncodeTriples(g *core.Graph) (string, error) {
	if g == nil {
		return "", core.ErrNilGraph
	}
	if g.Top() == "" {
		return "", ErrEmptyGraph
	}
	g = e.typed(g)
	lines := make([]string, 0, g.Len()+1)
	lines = append(lines, fmt.Sprintf("top(%s)", g.Top()))
	for _, t := range g.Triples() {
		t = e.roles.Normalize(t)
		lines = append(lines, fmt.Sprintf("%s(%s, %s)", t.Relation, t.Source, t.Target))
	}

	return strings.Join(lines, " ^\n"), nil
}
