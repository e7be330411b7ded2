package reify_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/mapping"
	"github.com/katalvlaran/norman/penman"
	"github.com/katalvlaran/norman/reify"
)

var locationTable = mapping.Reifications{
	"location": {Concept: "be-located-at-91", SourceRole: "ARG1", TargetRole: "ARG2"},
}

func decode(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := penman.Decode(text)
	require.NoError(t, err)

	return g
}

func TestReify_Forward(t *testing.T) {
	g := decode(t, `(p / person :location (c / city))`)

	res, err := reify.Reify(g, locationTable)
	require.NoError(t, err)

	want := []core.Triple{
		{Source: "p", Relation: "instance", Target: "person"},
		{Source: "b", Relation: "instance", Target: "be-located-at-91"},
		{Source: "b", Relation: "ARG1", Target: "p", Inverted: true},
		{Source: "b", Relation: "ARG2", Target: "c"},
		{Source: "c", Relation: "instance", Target: "city"},
	}
	if diff := cmp.Diff(want, res.Graph.Triples()); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, map[string]int{"location": 1}, res.Counts)
	assert.Equal(t, "p", res.Graph.Top())
	assert.Equal(t, 3, g.Len(), "input graph untouched")

	out, err := penman.NewEncoder(penman.WithIndent(penman.Compact)).Encode(res.Graph)
	require.NoError(t, err)
	assert.Equal(t, `(p / person :ARG1-of (b / be-located-at-91 :ARG2 (c / city)))`, out)
}

func TestReify_InvertedOriginal(t *testing.T) {
	g := decode(t, `(c / city :location-of (p / person))`)

	res, err := reify.Reify(g, locationTable)
	require.NoError(t, err)

	want := []core.Triple{
		{Source: "c", Relation: "instance", Target: "city"},
		{Source: "b", Relation: "instance", Target: "be-located-at-91"},
		{Source: "b", Relation: "ARG1", Target: "p"},
		{Source: "b", Relation: "ARG2", Target: "c", Inverted: true},
		{Source: "p", Relation: "instance", Target: "person"},
	}
	if diff := cmp.Diff(want, res.Graph.Triples()); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}

	out, err := penman.NewEncoder(penman.WithIndent(penman.Compact)).Encode(res.Graph)
	require.NoError(t, err)
	assert.Equal(t, `(c / city :ARG2-of (b / be-located-at-91 :ARG1 (p / person)))`, out)
}

func TestReify_MintingNeverCollides(t *testing.T) {
	table := mapping.Reifications{
		"employer": {Concept: "have-org-role-91", SourceRole: "ARG0", TargetRole: "ARG1"},
		"title":    {Concept: "have-org-role-91", SourceRole: "ARG0", TargetRole: "ARG2"},
	}
	minted := func(g *core.Graph) []string {
		var vs []string
		for _, tr := range g.Instances() {
			if tr.Target == "have-org-role-91" {
				vs = append(vs, tr.Source)
			}
		}
		return vs
	}

	g := decode(t, `(p / person :employer (c / company) :title (k / king))`)
	res, err := reify.Reify(g, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "h1"}, minted(res.Graph))

	g = decode(t, `(p / person :title (k / king) :employer (c / company))`)
	res, err = reify.Reify(g, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "h1"}, minted(res.Graph))

	g = decode(t, `(h / person :employer (c / company) :title (h1 / king))`)
	res, err = reify.Reify(g, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"h2", "h3"}, minted(res.Graph))
	assert.Equal(t, map[string]int{"employer": 1, "title": 1}, res.Counts)
}

func TestReify_PrefixAndAttributes(t *testing.T) {
	table := mapping.Reifications{
		"polarity": {Concept: "have-polarity-91", SourceRole: "ARG1", TargetRole: "ARG2"},
		"mod":      {Concept: "have-mod-91", SourceRole: "ARG1", TargetRole: "ARG2"},
	}
	g := decode(t, `(g / go-02 :polarity - :mod (f / fast))`)

	res, err := reify.Reify(g, table, reify.WithPrefix("x"))
	require.NoError(t, err)

	want := []core.Triple{
		{Source: "g", Relation: "instance", Target: "go-02"},
		{Source: "x", Relation: "instance", Target: "have-polarity-91"},
		{Source: "x", Relation: "ARG1", Target: "g", Inverted: true},
		{Source: "x", Relation: "ARG2", Target: "-"},
		{Source: "x1", Relation: "instance", Target: "have-mod-91"},
		{Source: "x1", Relation: "ARG1", Target: "g", Inverted: true},
		{Source: "x1", Relation: "ARG2", Target: "f"},
		{Source: "f", Relation: "instance", Target: "fast"},
	}
	if diff := cmp.Diff(want, res.Graph.Triples()); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
}

func TestReify_NoMatchAndNil(t *testing.T) {
	g := decode(t, `(w / want-01 :ARG0 (b / boy))`)
	res, err := reify.Reify(g, mapping.DefaultReifications())
	require.NoError(t, err)
	assert.True(t, res.Graph.Equal(g))
	assert.Empty(t, res.Counts)

	_, err = reify.Reify(nil, locationTable)
	assert.ErrorIs(t, err, core.ErrNilGraph)
}
