// Package align pairs the graphs of two corpora by their "# ::id" comment
// and finds graphs whose tops disagree between two parallel corpora.
//
// A corpus block starts at a "# ::id X" comment and runs until the next
// one; the first graph decoded from the block's non-comment lines is
// stored under X. A repeated id keeps its last block.
package align

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/penman"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

var idRE = regexp.MustCompile(`::id\s+(\S+)`)

// ReadIdentified decodes every "# ::id" block of r. Blocks without a
// well-formed graph are skipped.
func ReadIdentified(r io.Reader, opts ...penman.DecoderOption) (map[string]*core.Graph, error) {
	out := make(map[string]*core.Graph)
	var (
		id    string
		lines []string
	)
	flush := func() {
		if id == "" {
			return
		}
		if res, ok := penman.NewDecoder(strings.Join(lines, "\n"), opts...).Next(); ok {
			out[id] = res.Graph
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			if m := idRE.FindStringSubmatch(line); m != nil {
				flush()
				id, lines = m[1], nil
			}
			continue
		}
		if id != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("align: read: %w", err)
	}
	flush()

	return out, nil
}

// Alignment is the id overlap of two corpora, each list sorted.
type Alignment struct {
	Shared  []string
	LHSOnly []string
	RHSOnly []string
}

// Align compares the id sets of lhs and rhs.
func Align(lhs, rhs map[string]*core.Graph) Alignment {
	var a Alignment
	for id := range lhs {
		if _, ok := rhs[id]; ok {
			a.Shared = append(a.Shared, id)
		} else {
			a.LHSOnly = append(a.LHSOnly, id)
		}
	}
	for id := range rhs {
		if _, ok := lhs[id]; !ok {
			a.RHSOnly = append(a.RHSOnly, id)
		}
	}
	sort.Strings(a.Shared)
	sort.Strings(a.LHSOnly)
	sort.Strings(a.RHSOnly)

	return a
}

// WriteAligned writes the graphs of ids in order, each as an "# ::id"
// header, its encoding and a blank line.
func WriteAligned(w io.Writer, ids []string, graphs map[string]*core.Graph, enc *penman.Encoder) error {
	for _, id := range ids {
		g, ok := graphs[id]
		if !ok {
			return fmt.Errorf("align: no graph for id %q", id)
		}
		out, err := enc.Encode(g)
		if err != nil {
			return fmt.Errorf("align: encode %q: %w", id, err)
		}
		if _, err := fmt.Fprintf(w, "# ::id %s\n%s\n\n", id, out); err != nil {
			return err
		}
	}

	return nil
}

// Mismatch is a pair of parallel graphs with different tops.
type Mismatch struct {
	Index       int
	Left, Right *core.Graph
}

// TopMismatches compares a and b position by position over their common
// length. A length difference is reported by the caller.
func TopMismatches(a, b []*core.Graph) []Mismatch {
	var out []Mismatch
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i].Top() != b[i].Top() {
			out = append(out, Mismatch{Index: i, Left: a[i], Right: b[i]})
		}
	}

	return out
}
