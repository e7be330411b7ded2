// Package reify rewrites single relations into mediating nodes.
//
// For every triple whose relation has a row in the reification table, the
// triple is replaced in place by three:
//
//	(v, instance, concept)
//	(v, sourceRole, source)  inverted = !original.Inverted
//	(v, targetRole, target)  inverted =  original.Inverted
//
// v is a fresh variable minted from the concept (or a caller prefix), so
// two reifications of the same concept on one graph get h and h1, never a
// collision. The source triple is written as an inverse role so the edge
// still reads from the original source towards the mediator.
//
// No eligibility filtering is applied: every matching relation is reified,
// including attribute relations such as :polarity. Instance triples are
// never reified.
//
// Complexity:
//
//	– Time:  O(T + R·k) where T = triples, R = reified triples and k the
//	  number of suffixes tried while minting.
//	– Space: O(T + V).
//
// Options:
//
//	– WithPrefix(p): mint p, p1, p2, … instead of deriving the name from
//	  the concept.
//
// Errors:
//
//	– core.ErrNilGraph if the graph is nil.
//
// Example usage:
//
//	res, err := reify.Reify(g, mapping.DefaultReifications())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Counts["location"])
package reify

import "github.com/katalvlaran/norman/core"

// Result is the rewritten graph plus per-relation reification counts.
type Result struct {
	Graph  *core.Graph
	Counts map[string]int
}

// Option configures Reify.
type Option func(*Options)

// Options holds the Reify configuration.
type Options struct {
	// Prefix replaces the concept-derived base of minted variables.
	Prefix string
}

// WithPrefix sets the variable prefix. The empty string restores the default.
func WithPrefix(p string) Option {
	return func(o *Options) { o.Prefix = p }
}
