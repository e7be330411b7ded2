package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/norman/core"
)

func TestTriple_EqualityUsesAllFields(t *testing.T) {
	a := core.Triple{Source: "a", Relation: "ARG0", Target: "b"}
	b := a
	assert.Equal(t, a, b)

	b.Inverted = true
	assert.NotEqual(t, a, b, "inverted flag participates in equality")

	set := map[core.Triple]int{a: 1, b: 2}
	assert.Len(t, set, 2)
}

func TestTriple_IsInstance(t *testing.T) {
	assert.True(t, core.Triple{Source: "a", Relation: core.InstanceRelation, Target: "x"}.IsInstance())
	assert.False(t, core.Triple{Source: "a", Relation: "ARG0", Target: "x"}.IsInstance())
}

func TestNewGraph_CopiesInput(t *testing.T) {
	ts := []core.Triple{{Source: "a", Relation: core.InstanceRelation, Target: "x"}}
	g := core.NewGraph(ts, "a")
	ts[0].Target = "mutated"

	assert.Equal(t, "x", g.At(0).Target)

	out := g.Triples()
	out[0].Target = "mutated"
	assert.Equal(t, "x", g.At(0).Target, "Triples must return a copy")
}

func TestGraph_Validate(t *testing.T) {
	var nilGraph *core.Graph
	assert.ErrorIs(t, nilGraph.Validate(), core.ErrNilGraph)

	bad := core.NewGraph([]core.Triple{{Relation: "ARG0", Target: "b"}}, "a")
	assert.ErrorIs(t, bad.Validate(), core.ErrEmptyVariable)

	assert.NoError(t, wantBoyGo().Validate())
}
