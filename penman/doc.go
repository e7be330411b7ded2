// Package penman reads and writes AMR graphs in PENMAN notation.
//
// Decoding is resilient: a Decoder walks a text blob holding any number of
// graphs, drops units that fail to parse, and resumes one byte past the
// failure point. Every triple passes through a Roles canonicalizer, which
// decides how surface roles such as ":ARG0-of" or ":mod-of" map to a
// canonical relation and an inversion flag.
//
//	d := penman.NewDecoder(text, penman.WithRoles(penman.CanonicalRoles()))
//	for res := range d.All() {
//		out, err := enc.Encode(res.Graph)
//		…
//	}
//	log.Printf("dropped %d malformed units", len(d.Dropped()))
//
// Encoding lays triples out from the graph's top, writing reentrant nodes
// as bare variables and flipping triples that cannot be reached in their
// preferred direction. The same Roles value spells roles on the way out.
//
// Roles:
//
//	DefaultRoles()    generic "-of" rule, exceptions consist-of,
//	                  prep-on-behalf-of, prep-out-of
//	CanonicalRoles()  adds mod-of⇄domain, domain-of⇄mod, consist⇄consist-of, …
//
// Errors:
//
//	*DecodeError (ErrDecode) – malformed unit, recovered by Decoder
//	ErrEmptyGraph            – encoding a graph without top
//	ErrDisconnected          – encoding a graph with unreachable nodes
package penman
