// File: parser.go
// Role: Recursive-descent parser for one PENMAN unit "(var / concept :role target …)".
// Grammar:
//
//	node    := "(" var ["/" concept] edge* ")"
//	edge    := ":" role target
//	target  := node | string | atom
//	var     := string | atom
//	concept := string | [^\s:()/,]*      (may be empty)
//	atom    := [^\s()/:]+
//
// Determinism:
//   - Triples are emitted in reading order; an edge to a nested node is
//     emitted before the nested node's own triples.

package penman

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/norman/core"
)

// unitParser holds the state of a single unit parse.
type unitParser struct {
	s       string
	pos     int
	roles   *Roles
	top     string
	triples []core.Triple
	counts  map[string]int
}

// parseUnit parses the node starting at s[start] == '('.
// It returns the graph, the original role counts and the end offset.
func parseUnit(s string, start int, roles *Roles) (*core.Graph, map[string]int, int, *DecodeError) {
	p := &unitParser{s: s, pos: start, roles: roles, counts: make(map[string]int)}
	if _, err := p.node(); err != nil {
		return nil, nil, 0, asDecodeError(err, start)
	}

	return core.NewGraph(p.triples, p.top), p.counts, p.pos, nil
}

// asDecodeError returns the *DecodeError in err's chain, or a new one at
// offset at carrying err's message.
func asDecodeError(err error, at int) *DecodeError {
	var derr *DecodeError
	if errors.As(err, &derr) {
		return derr
	}

	return &DecodeError{Offset: at, Msg: err.Error()}
}

func (p *unitParser) fail(at int, format string, args ...any) error {
	return &DecodeError{Offset: at, Msg: fmt.Sprintf(format, args...)}
}

func (p *unitParser) eof() bool { return p.pos >= len(p.s) }

func (p *unitParser) skipSpace() {
	for !p.eof() && isSpace(p.s[p.pos]) {
		p.pos++
	}
}

// node parses "(" … ")" and returns the node's variable.
func (p *unitParser) node() (string, error) {
	p.pos++ // '('
	p.skipSpace()

	v, err := p.variable()
	if err != nil {
		return "", err
	}
	if p.top == "" {
		p.top = v
	}

	p.skipSpace()
	if !p.eof() && p.s[p.pos] == '/' {
		p.pos++
		p.skipSpace()
		concept, err := p.concept()
		if err != nil {
			return "", err
		}
		p.triples = append(p.triples, core.Triple{Source: v, Relation: core.InstanceRelation, Target: concept})
	}

	for {
		p.skipSpace()
		if p.eof() {
			return "", p.fail(p.pos, "unexpected end of input inside node %q", v)
		}
		switch c := p.s[p.pos]; c {
		case ')':
			p.pos++
			return v, nil
		case ':':
			if err := p.edge(v); err != nil {
				return "", err
			}
		default:
			return "", p.fail(p.pos, "unexpected %q in node %q", c, v)
		}
	}
}

// edge parses ":role target" below variable v.
func (p *unitParser) edge(v string) error {
	p.pos++ // ':'
	begin := p.pos
	for !p.eof() && !isSpace(p.s[p.pos]) && p.s[p.pos] != '(' && p.s[p.pos] != ')' {
		p.pos++
	}
	surface := p.s[begin:p.pos]
	p.counts[":"+surface]++
	relation, inverted := p.roles.Canonical(surface)

	p.skipSpace()
	if p.eof() {
		return p.fail(p.pos, "missing target for :%s", surface)
	}

	var target string
	switch c := p.s[p.pos]; c {
	case '(':
		// reserve the edge slot so it precedes the nested node's triples
		slot := len(p.triples)
		p.triples = append(p.triples, core.Triple{})
		child, err := p.node()
		if err != nil {
			return err
		}
		p.triples[slot] = orient(v, relation, child, inverted)
		return nil
	case '"':
		str, err := p.quoted()
		if err != nil {
			return err
		}
		target = str
	case ')', ':', '/':
		return p.fail(p.pos, "missing target for :%s", surface)
	default:
		target = p.atom()
	}
	p.triples = append(p.triples, orient(v, relation, target, inverted))

	return nil
}

// orient builds the triple for "v :role target" given the canonical direction.
func orient(v, relation, target string, inverted bool) core.Triple {
	if inverted {
		return core.Triple{Source: target, Relation: relation, Target: v, Inverted: true}
	}

	return core.Triple{Source: v, Relation: relation, Target: target}
}

func (p *unitParser) variable() (string, error) {
	if p.eof() {
		return "", p.fail(p.pos, "expected variable, got end of input")
	}
	if p.s[p.pos] == '"' {
		return p.quoted()
	}
	v := p.atom()
	if v == "" {
		return "", p.fail(p.pos, "expected variable, got %q", p.s[p.pos])
	}

	return v, nil
}

func (p *unitParser) concept() (string, error) {
	if !p.eof() && p.s[p.pos] == '"' {
		return p.quoted()
	}
	begin := p.pos
	for !p.eof() && !strings.ContainsRune(" \t\r\n\f\v:()/,", rune(p.s[p.pos])) {
		p.pos++
	}

	return p.s[begin:p.pos], nil
}

func (p *unitParser) atom() string {
	begin := p.pos
	for !p.eof() && !isSpace(p.s[p.pos]) && !strings.ContainsRune("()/:", rune(p.s[p.pos])) {
		p.pos++
	}

	return p.s[begin:p.pos]
}

// quoted reads a double-quoted string, keeping the quotes and escapes.
// An unterminated string fails at its opening quote so resynchronization
// restarts right after it rather than at the end of input.
func (p *unitParser) quoted() (string, error) {
	begin := p.pos
	for i := begin + 1; i < len(p.s); i++ {
		switch p.s[i] {
		case '\\':
			i++
		case '"':
			p.pos = i + 1
			return p.s[begin:p.pos], nil
		}
	}

	return "", p.fail(begin, "unterminated string")
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
