// Package stats summarizes a decoded corpus before and after reification
// and dereification.
//
// Collect runs four views of the corpus:
//
//	Original                 the decoded graphs
//	Reified                  every graph through reify.Reify
//	Collapsed from original  every graph through collapse.Collapse
//	Collapsed from reified   the reified graphs through collapse.Collapse
//
// and records, per view, node and edge totals, how many graphs changed
// their variable set, the deepest nesting below top and the rewrite
// counts. The original view also counts the ":domain-of" and ":mod-of"
// roles that canonical decoding normalizes away.
//
// Report.WriteTo renders the plain-text report of the corpus tools.
package stats

// Inverse roles tracked in Report.Inversions.
const (
	RoleDomainOf = ":domain-of"
	RoleModOf    = ":mod-of"
)

// Tally counts how many graphs a key occurred in and how often overall.
type Tally struct {
	Graphs    int
	Instances int
}

// Entry is one key of a Tally table, for sorted output.
type Entry struct {
	Key string
	Tally
}

// Section is the statistics of one view of the corpus.
type Section struct {
	// Name is the section title.
	Name string

	// Graphs is the number of graphs in the view.
	Graphs int

	// Changed counts graphs whose variable set differs from the view's input.
	// It is -1 for the original view.
	Changed int

	// Nodes and Edges are totals of variables and triples.
	Nodes, Edges int

	// MaxDepth is the deepest BFS layer below top over all graphs.
	MaxDepth int

	// Cyclic counts graphs whose variable links contain a cycle.
	Cyclic int

	// Label names the rewrite counted in Counts ("Reifications", …).
	Label string

	// Counts tallies rewrites by relation or concept.
	Counts map[string]Tally

	// RewrittenGraphs counts graphs with at least one rewrite.
	RewrittenGraphs int
}

// AvgNodes is the mean variable count, 0 for an empty view.
func (s Section) AvgNodes() float64 { return avg(s.Nodes, s.Graphs) }

// AvgEdges is the mean triple count, 0 for an empty view.
func (s Section) AvgEdges() float64 { return avg(s.Edges, s.Graphs) }

// Rewrites is the total number of rewrites over all graphs.
func (s Section) Rewrites() int { return sumInstances(s.Counts) }

// Report is the full corpus summary.
type Report struct {
	Original          Section
	Reified           Section
	CollapsedOriginal Section
	CollapsedReified  Section

	// Inversions tallies RoleDomainOf and RoleModOf in the original text.
	Inversions map[string]Tally
}

// Sections returns the four views in report order.
func (r *Report) Sections() []*Section {
	return []*Section{&r.Original, &r.Reified, &r.CollapsedOriginal, &r.CollapsedReified}
}

func avg(total, n int) float64 {
	if n == 0 {
		return 0
	}

	return float64(total) / float64(n)
}

func sumInstances(m map[string]Tally) int {
	n := 0
	for _, t := range m {
		n += t.Instances
	}

	return n
}
