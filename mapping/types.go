// Package mapping loads the declarative tables that drive reification and
// dereification.
//
// Both tables share one tab-separated format, four columns per row:
//
//	relation  concept  source-role  target-role
//	location  be-located-at-91  ARG1  ARG2
//
// Lines starting with '#' and blank lines are ignored; a leading ':' on any
// role column is stripped. A row with the wrong column count or an empty
// field is a *IntegrityError, reported before any graph is processed.
//
// Reifications index rows by relation (a repeated relation keeps its last
// row). Dereifications index rows by concept and keep every row in file
// order, which is the order patterns are tried in.
//
// Errors:
//
//	ErrMappingIntegrity - malformed row, wrapped by *IntegrityError
package mapping

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMappingIntegrity is wrapped by every *IntegrityError.
var ErrMappingIntegrity = errors.New("mapping: malformed table row")

// IntegrityError locates a malformed row.
type IntegrityError struct {
	Path string // table name or path, may be empty for readers
	Line int    // 1-based line number
	Msg  string
}

func (e *IntegrityError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("mapping: line %d: %s", e.Line, e.Msg)
	}

	return fmt.Sprintf("mapping: %s:%d: %s", e.Path, e.Line, e.Msg)
}

// Unwrap lets errors.Is(err, ErrMappingIntegrity) match.
func (e *IntegrityError) Unwrap() error { return ErrMappingIntegrity }

// Row is one parsed table line.
type Row struct {
	Relation   string
	Concept    string
	SourceRole string
	TargetRole string
	Line       int
}

// Reification is the rewrite of one relation into a mediating node.
type Reification struct {
	Concept    string
	SourceRole string
	TargetRole string
}

// Pattern is one collapse alternative for a mediating concept.
type Pattern struct {
	Relation   string
	SourceRole string
	TargetRole string
}

// Reifications maps relation → Reification.
type Reifications map[string]Reification

// Dereifications maps concept → ordered Patterns.
type Dereifications map[string][]Pattern

// NewReifications indexes rows by relation; later rows replace earlier ones.
func NewReifications(rows []Row) Reifications {
	t := make(Reifications, len(rows))
	for _, r := range rows {
		t[r.Relation] = Reification{Concept: r.Concept, SourceRole: r.SourceRole, TargetRole: r.TargetRole}
	}

	return t
}

// NewDereifications groups rows by concept, preserving row order.
func NewDereifications(rows []Row) Dereifications {
	t := make(Dereifications)
	for _, r := range rows {
		t[r.Concept] = append(t[r.Concept], Pattern{Relation: r.Relation, SourceRole: r.SourceRole, TargetRole: r.TargetRole})
	}

	return t
}

// Relations returns the table keys in ascending order.
func (t Reifications) Relations() []string {
	return sortedKeys(t)
}

// Concepts returns the table keys in ascending order.
func (t Dereifications) Concepts() []string {
	return sortedKeys(t)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
