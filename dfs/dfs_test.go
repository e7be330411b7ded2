package dfs_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/norman/core"
	"github.com/katalvlaran/norman/dfs"
)

// buildChain creates a chain of n typed variables: n0 :ARG0 n1 :ARG0 … n(n-1).
func buildChain(n int) *core.Graph {
	b := core.NewBuilder("n0")
	for i := 0; i < n; i++ {
		v := "n" + strconv.Itoa(i)
		b.Instance(v, "thing")
		if i < n-1 {
			b.Add(v, "ARG0", "n"+strconv.Itoa(i+1))
		}
	}

	return b.Graph()
}

// inverted builds "(b / boy :ARG0-of (w / want-01))" with top b.
func inverted() *core.Graph {
	return core.NewBuilder("b").
		Instance("b", "boy").
		AddInverted("w", "ARG0", "b").
		Instance("w", "want-01").
		Graph()
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	res, err := dfs.DFS(buildChain(2), "zz")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_ChainPreOrder(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), "n0")
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, res.Order)
	assert.True(t, res.Visited["n2"])
}

func TestDFS_ConstantsAreNotFollowed(t *testing.T) {
	g := core.NewBuilder("a").Instance("a", "x").Add("a", "polarity", "-").Graph()
	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, res.Order)
}

func TestDFS_SurfaceDirection(t *testing.T) {
	g := inverted()

	res, err := dfs.DFS(g, "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, res.Order, "logical direction is w→b")
	assert.False(t, res.Visited["w"])

	res, err = dfs.DFS(g, "b", dfs.WithSurfaceDirection())
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "w"}, res.Order)

	res, err = dfs.DFS(g, "w", dfs.WithSurfaceDirection())
	require.NoError(t, err)
	assert.Equal(t, []string{"w"}, res.Order, "written direction is b→w")
}

func TestDFS_ReentrancyVisitedOnce(t *testing.T) {
	g := core.NewBuilder("a").
		Add("a", "ARG0", "b").
		Add("a", "ARG1", "c").
		Add("c", "ARG0", "b").
		Add("b", "ARG0", "b").
		Graph()
	res, err := dfs.DFS(g, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)
}

func TestDFS_FilterTriple(t *testing.T) {
	res, err := dfs.DFS(buildChain(3), "n0", dfs.WithFilterTriple(func(tr core.Triple) bool {
		return tr.Source != "n1"
	}))
	require.NoError(t, err)
	assert.False(t, res.Visited["n2"])
	assert.Equal(t, []string{"n0", "n1"}, res.Order)
}

func TestDFS_FilterSeesVisitState(t *testing.T) {
	g := core.NewBuilder("a").
		Add("a", "ARG0", "b").
		Add("a", "ARG1", "c").
		Graph()
	blocked := false
	res, err := dfs.DFS(g, "a",
		dfs.WithOnVisit(func(id string) error {
			if id == "b" {
				blocked = true
			}
			return nil
		}),
		dfs.WithFilterTriple(func(tr core.Triple) bool {
			return !blocked || tr.Relation != "ARG1"
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, res.Order)
}

func TestDFS_OnVisitOrderAndError(t *testing.T) {
	var pre []string
	_, err := dfs.DFS(buildChain(3), "n0", dfs.WithOnVisit(func(id string) error {
		pre = append(pre, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2"}, pre)

	boom := errors.New("boom")
	res, err := dfs.DFS(buildChain(3), "n0", dfs.WithOnVisit(func(id string) error {
		if id == "n1" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.False(t, res.Visited["n2"])
}
