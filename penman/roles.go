// File: roles.go
// Role: Role-inversion canonicalizer. Maps surface role tokens to
//       (relation, inverted) on decode and back on encode.
// AI-HINT (file):
//   - The same Roles value must be used to decode and encode a corpus.
//   - Normalize(t) == decode(encode(t)); it is idempotent.

package penman

import (
	"strings"

	"github.com/katalvlaran/norman/core"
)

// inverseSuffix marks the inverse spelling of a role.
const inverseSuffix = "-of"

// DefaultExceptions lists relations that end in "-of" but are not inverse
// spellings of another role.
var DefaultExceptions = []string{"consist-of", "prep-on-behalf-of", "prep-out-of"}

// RoleRule rewrites one surface role into a canonical (relation, inverted) pair.
type RoleRule struct {
	Surface  string
	Relation string
	Inverted bool
}

// CanonicalRules is the fixed AMR canonicalization table.
//
//	mod-of         ⇄ domain
//	domain-of      ⇄ mod
//	consist        ⇄ consist-of (inverted)
//	prep-on-behalf ⇄ prep-on-behalf-of (inverted)
//	prep-out       ⇄ prep-out-of (inverted)
var CanonicalRules = []RoleRule{
	{Surface: "mod-of", Relation: "domain"},
	{Surface: "domain-of", Relation: "mod"},
	{Surface: "consist", Relation: "consist-of", Inverted: true},
	{Surface: "prep-on-behalf", Relation: "prep-on-behalf-of", Inverted: true},
	{Surface: "prep-out", Relation: "prep-out-of", Inverted: true},
}

// relKey indexes the encode table.
type relKey struct {
	relation string
	inverted bool
}

// Roles is the codec configuration for role inversion: an exception set and
// an optional rewrite table. A nil *Roles behaves like DefaultRoles().
type Roles struct {
	exceptions map[string]struct{}
	decode     map[string]RoleRule
	encode     map[relKey]string
}

// NewRoles builds a Roles value from an exception list and rewrite rules.
//
// Each rule is consulted on decode by its Surface. The encode table is
// derived from the same rules:
//   - an inverted rule writes (Relation, inverted) as Surface;
//   - a non-inverted rule whose Surface is "B-of" writes (B, inverted) as
//     Relation, since "x :B-of y" and "x :Relation y" mean the same.
func NewRoles(exceptions []string, rules ...RoleRule) *Roles {
	r := &Roles{
		exceptions: make(map[string]struct{}, len(exceptions)),
		decode:     make(map[string]RoleRule, len(rules)),
		encode:     make(map[relKey]string, len(rules)),
	}
	for _, e := range exceptions {
		r.exceptions[e] = struct{}{}
	}
	for _, rule := range rules {
		r.decode[rule.Surface] = rule
		switch {
		case rule.Inverted:
			r.encode[relKey{rule.Relation, true}] = rule.Surface
		case strings.HasSuffix(rule.Surface, inverseSuffix):
			base := strings.TrimSuffix(rule.Surface, inverseSuffix)
			r.encode[relKey{base, true}] = rule.Relation
		}
	}

	return r
}

// DefaultRoles applies only the generic "-of" rule and DefaultExceptions.
func DefaultRoles() *Roles {
	return NewRoles(DefaultExceptions)
}

// CanonicalRoles adds CanonicalRules on top of DefaultRoles.
func CanonicalRoles() *Roles {
	return NewRoles(DefaultExceptions, CanonicalRules...)
}

func (r *Roles) orDefault() *Roles {
	if r == nil {
		return DefaultRoles()
	}

	return r
}

// IsException reports whether relation is exempt from the generic inverse rule.
func (r *Roles) IsException(relation string) bool {
	_, ok := r.orDefault().exceptions[relation]

	return ok
}

// Canonical maps a surface role (without colon) to its canonical relation
// and whether the triple it labels is inverted.
func (r *Roles) Canonical(surface string) (string, bool) {
	r = r.orDefault()
	if rule, ok := r.decode[surface]; ok {
		return rule.Relation, rule.Inverted
	}
	if surface == core.InstanceRelation || r.IsException(surface) {
		return surface, false
	}
	if len(surface) > len(inverseSuffix) && strings.HasSuffix(surface, inverseSuffix) {
		return strings.TrimSuffix(surface, inverseSuffix), true
	}

	return surface, false
}

// Surface maps a canonical relation and direction back to the role written
// at the anchoring node.
func (r *Roles) Surface(relation string, inverted bool) string {
	r = r.orDefault()
	if s, ok := r.encode[relKey{relation, inverted}]; ok {
		return s
	}
	if !inverted {
		return relation
	}

	return relation + inverseSuffix
}

// Normalize returns the triple that decoding the encoded form of t yields.
// Instance triples are returned unchanged.
func (r *Roles) Normalize(t core.Triple) core.Triple {
	if t.IsInstance() {
		return t
	}
	from, to := t.Source, t.Target
	if t.Inverted {
		from, to = to, from
	}
	rel, inv := r.Canonical(r.Surface(t.Relation, t.Inverted))
	if inv {
		return core.Triple{Source: to, Relation: rel, Target: from, Inverted: true}
	}

	return core.Triple{Source: from, Relation: rel, Target: to}
}

// NormalizeGraph applies Normalize to every triple of g.
func (r *Roles) NormalizeGraph(g *core.Graph) *core.Graph {
	return g.Map(func(t core.Triple) []core.Triple {
		return []core.Triple{r.Normalize(t)}
	})
}
