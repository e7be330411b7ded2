// Package nodetop inserts ":TOP <var>" markers in front of every nested node
// definition of raw PENMAN text, so downstream alignment tools can address
// each child node on its own.
//
// The rewrite is textual and line-oriented; it runs before decoding:
//
//	:ARG0 (b / boy)   →   :TOP b :ARG0 (b / boy)
//
// Lines starting with '#' and quoted constants are left untouched. The root
// node and reentrant references (":ARG0 b") carry no preceding role with an
// open node, so they are never marked.
package nodetop

import (
	"regexp"
	"strings"
)

// Marker is the relation inserted ahead of each nested node.
const Marker = "TOP"

// commentPrefix marks lines that are passed through verbatim.
const commentPrefix = "#"

// nodeRE matches ":<role> (<var> /" with arbitrary inner spacing, or a
// double-quoted string, which is consumed whole and passed through.
var nodeRE = regexp.MustCompile(`"(?:[^"\\]|\\.)*"|:[^\s()":/]+\s*\(\s*(?P<var>[^\s()/:"]+)\s*/`)

var varIndex = nodeRE.SubexpIndex("var")

// MarkLine rewrites a single line and returns it with the number of markers
// inserted.
func MarkLine(line string) (string, int) {
	if strings.HasPrefix(line, commentPrefix) {
		return line, 0
	}
	n := 0
	out := nodeRE.ReplaceAllStringFunc(line, func(m string) string {
		if strings.HasPrefix(m, `"`) {
			return m
		}
		n++
		v := nodeRE.FindStringSubmatch(m)[varIndex]

		return ":" + Marker + " " + v + " " + m
	})

	return out, n
}

// MarkLines rewrites every line in place and returns the total number of
// markers inserted.
func MarkLines(lines []string) int {
	total := 0
	for i, line := range lines {
		var n int
		lines[i], n = MarkLine(line)
		total += n
	}

	return total
}

// Mark rewrites a text blob line by line. Line endings are preserved.
func Mark(text string) (string, int) {
	lines := strings.Split(text, "\n")
	n := MarkLines(lines)

	return strings.Join(lines, "\n"), n
}
