package stats

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/norman/bfs"
	"github.com/katalvlaran/norman/collapse"
	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/dfs"
	"github.com/katalvlaran/norman/mapping"
	"github.com/katalvlaran/norman/penman"
	"github.com/katalvlaran/norman/reify"
)

// Collect builds the Report of a decoded corpus.
//
// Steps:
//  1. Measure the original graphs and tally :domain-of / :mod-of roles.
//  2. Reify every graph; count per-relation reifications.
//  3. Collapse the original and the reified graphs; count per-concept
//     dereifications.
//
// A collapse *MismatchError aborts Collect.
func Collect(results []penman.Result, reTable mapping.Reifications, coTable mapping.Dereifications) (*Report, error) {
	orig := make([]*core.Graph, len(results))
	inversions := map[string]Tally{}
	for i, res := range results {
		orig[i] = res.Graph
		for _, role := range []string{RoleDomainOf, RoleModOf} {
			if n := res.RoleCounts[role]; n > 0 {
				t := inversions[role]
				t.Graphs++
				t.Instances += n
				inversions[role] = t
			}
		}
	}

	rep := &Report{Inversions: inversions}
	rep.Original = measure("Original", orig, nil)
	rep.Original.Changed = -1

	reified := make([]*core.Graph, len(orig))
	reCounts := make([]map[string]int, len(orig))
	for i, g := range orig {
		res, err := reify.Reify(g, reTable)
		if err != nil {
			return nil, fmt.Errorf("stats: reify graph %d: %w", i, err)
		}
		reified[i], reCounts[i] = res.Graph, res.Counts
	}
	rep.Reified = measure("Reified", reified, orig)
	rep.Reified.Label = "Reifications"
	tally(&rep.Reified, reCounts)

	var err error
	if rep.CollapsedOriginal, err = collapseView("Collapsed from original", orig, coTable); err != nil {
		return nil, err
	}
	if rep.CollapsedReified, err = collapseView("Collapsed from reified", reified, coTable); err != nil {
		return nil, err
	}

	return rep, nil
}

func collapseView(name string, in []*core.Graph, table mapping.Dereifications) (Section, error) {
	out := make([]*core.Graph, len(in))
	counts := make([]map[string]int, len(in))
	for i, g := range in {
		res, err := collapse.Collapse(g, table)
		if err != nil {
			return Section{}, fmt.Errorf("stats: collapse graph %d: %w", i, err)
		}
		out[i], counts[i] = res.Graph, res.Counts
	}
	s := measure(name, out, in)
	s.Label = "Dereifications"
	tally(&s, counts)

	return s, nil
}

// measure computes size, depth and change statistics of gs against base.
func measure(name string, gs, base []*core.Graph) Section {
	s := Section{Name: name, Graphs: len(gs)}
	for i, g := range gs {
		vars := g.Variables()
		s.Nodes += len(vars)
		s.Edges += g.Len()
		if base != nil && !vars.Equal(base[i].Variables()) {
			s.Changed++
		}
		if res, err := bfs.BFS(g, g.Top(), bfs.WithUndirected()); err == nil {
			s.MaxDepth = max(s.MaxDepth, res.MaxDepth())
		}
		if cyclic, _, err := dfs.HasCycle(g); err == nil && cyclic {
			s.Cyclic++
		}
	}

	return s
}

// tally folds per-graph counts into s.Counts.
func tally(s *Section, perGraph []map[string]int) {
	s.Counts = make(map[string]Tally)
	for _, counts := range perGraph {
		if len(counts) > 0 {
			s.RewrittenGraphs++
		}
		for k, n := range counts {
			t := s.Counts[k]
			t.Graphs++
			t.Instances += n
			s.Counts[k] = t
		}
	}
}

// Sorted returns the entries of m by descending instance count, ties by key.
func Sorted(m map[string]Tally) []Entry {
	out := make([]Entry, 0, len(m))
	for k, t := range m {
		out = append(out, Entry{Key: k, Tally: t})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Instances != out[j].Instances {
			return out[i].Instances > out[j].Instances
		}
		return out[i].Key < out[j].Key
	})

	return out
}
