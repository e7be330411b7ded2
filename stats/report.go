package stats

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo renders the report as indented plain text.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, s := range r.Sections() {
		if s.Changed < 0 {
			fmt.Fprintf(&sb, "%s:\n", s.Name)
		} else {
			fmt.Fprintf(&sb, "%s (%d / %d)\n", s.Name, s.Changed, s.Graphs)
		}
		fmt.Fprintf(&sb, "  Average / Total number of nodes: %.2f / %d\n", s.AvgNodes(), s.Nodes)
		fmt.Fprintf(&sb, "  Average / Total number of edges: %.2f / %d\n", s.AvgEdges(), s.Edges)
		fmt.Fprintf(&sb, "  Maximum depth: %d (%d cyclic)\n", s.MaxDepth, s.Cyclic)

		if s == &r.Original {
			graphs, instances := 0, 0
			for _, t := range r.Inversions {
				graphs += t.Graphs
				instances += t.Instances
			}
			fmt.Fprintf(&sb, "  Normalized inversions (%d graphs : %d instances)\n", graphs, instances)
			for _, role := range []string{RoleDomainOf, RoleModOf} {
				t := r.Inversions[role]
				fmt.Fprintf(&sb, "    %s : %d graphs : %d instances\n", role, t.Graphs, t.Instances)
			}
			continue
		}

		fmt.Fprintf(&sb, "  %s (%d graphs: %d instances)\n", s.Label, s.RewrittenGraphs, s.Rewrites())
		for _, e := range Sorted(s.Counts) {
			fmt.Fprintf(&sb, "    %s : %d graphs : %d instances\n", e.Key, e.Graphs, e.Instances)
		}
	}
	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}
