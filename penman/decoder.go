// File: decoder.go
// Role: Resilient, lazy decoding of a text blob holding zero or more graphs.
// Policy:
//   - A malformed unit never aborts the corpus: it is dropped, its
//     *DecodeError is recorded, and scanning resumes at Offset+1.
//   - Resynchronization is an explicit cursor loop; every retry strictly
//     advances the cursor, so the loop terminates on any finite input.
//   - The sequence is single-pass: each unit is parsed at most once.

package penman

import (
	"iter"
	"strings"

	"github.com/katalvlaran/norman/core"
)

// Result is one successfully decoded graph with its side data.
type Result struct {
	// Graph is the decoded, canonicalized graph.
	Graph *core.Graph

	// RoleCounts is the multiset of original surface roles (":mod-of", …)
	// before canonicalization.
	RoleCounts map[string]int

	// Comments holds the "#" lines directly preceding the graph, without
	// their trailing newline.
	Comments []string

	// Start and End delimit the unit in the decoded text.
	Start, End int
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithRoles sets the role-inversion canonicalizer used per triple.
func WithRoles(r *Roles) DecoderOption {
	return func(d *Decoder) {
		if r != nil {
			d.roles = r
		}
	}
}

// Decoder yields graphs from text on demand.
type Decoder struct {
	text     string
	pos      int
	roles    *Roles
	comments []string
	dropped  []*DecodeError
}

// NewDecoder prepares a Decoder over text. Nothing is parsed until Next.
func NewDecoder(text string, opts ...DecoderOption) *Decoder {
	d := &Decoder{text: text, roles: DefaultRoles()}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Next decodes the next well-formed graph. It returns false when the text
// is exhausted.
//
// Steps:
//  1. Skip bytes until '(' or '#'; collect '#' lines as pending comments.
//  2. Parse the unit at '('. On success, attach pending comments and return.
//  3. On failure at offset p, record the error, discard pending comments
//     and resume at p+1 (never before the unit start + 1).
func (d *Decoder) Next() (Result, bool) {
	for d.pos < len(d.text) {
		switch d.text[d.pos] {
		case '#':
			end := strings.IndexByte(d.text[d.pos:], '\n')
			if end < 0 {
				end = len(d.text) - d.pos
			}
			d.comments = append(d.comments, strings.TrimRight(d.text[d.pos:d.pos+end], "\r"))
			d.pos += end
		case '(':
			start := d.pos
			g, counts, end, derr := parseUnit(d.text, start, d.roles)
			if derr != nil {
				d.dropped = append(d.dropped, derr)
				d.comments = nil
				d.pos = max(derr.Offset, start) + 1
				continue
			}
			res := Result{Graph: g, RoleCounts: counts, Comments: d.comments, Start: start, End: end}
			d.comments = nil
			d.pos = end

			return res, true
		default:
			d.pos++
		}
	}

	return Result{}, false
}

// All returns the remaining graphs as a lazy sequence.
// Breaking out of the loop leaves the Decoder positioned after the last
// yielded graph.
func (d *Decoder) All() iter.Seq[Result] {
	return func(yield func(Result) bool) {
		for {
			res, ok := d.Next()
			if !ok || !yield(res) {
				return
			}
		}
	}
}

// Dropped returns the errors of every unit discarded so far.
func (d *Decoder) Dropped() []*DecodeError {
	out := make([]*DecodeError, len(d.dropped))
	copy(out, d.dropped)

	return out
}

// DecodeAll decodes every graph in text eagerly.
func DecodeAll(text string, opts ...DecoderOption) ([]Result, []*DecodeError) {
	d := NewDecoder(text, opts...)
	var out []Result
	for res := range d.All() {
		out = append(out, res)
	}

	return out, d.Dropped()
}

// Decode returns the first well-formed graph in text, or the first decode
// error when there is none.
func Decode(text string, opts ...DecoderOption) (*core.Graph, error) {
	d := NewDecoder(text, opts...)
	if res, ok := d.Next(); ok {
		return res.Graph, nil
	}
	if dropped := d.Dropped(); len(dropped) > 0 {
		return nil, dropped[0]
	}

	return nil, &DecodeError{Offset: len(text), Msg: "no graph found"}
}
