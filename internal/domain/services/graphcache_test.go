package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/domain/mocks"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// countingGraph wraps a provider and counts backing reads per method.
type countingGraph struct {
	ports.GraphProvider
	parentCalls int
	childCalls  int
	spouseCalls int
}

func (c *countingGraph) GetParents(ctx context.Context, treeID, personID string) ([]string, error) {
	c.parentCalls++
	return c.GraphProvider.GetParents(ctx, treeID, personID)
}

func (c *countingGraph) GetChildren(ctx context.Context, treeID, personID string) ([]string, error) {
	c.childCalls++
	return c.GraphProvider.GetChildren(ctx, treeID, personID)
}

func (c *countingGraph) GetSpouses(ctx context.Context, treeID, personID string) ([]string, error) {
	c.spouseCalls++
	return c.GraphProvider.GetSpouses(ctx, treeID, personID)
}

func TestCachedGraph_MemoizesReads(t *testing.T) {
	inner := mocks.NewGraph(testTree)
	inner.AddParent("p", "c")
	inner.AddUnion("p", "q")
	counting := &countingGraph{GraphProvider: inner}

	g := newCachedGraph(counting, testTree)

	for i := 0; i < 3; i++ {
		parents, err := g.Parents(context.Background(), "c")
		require.NoError(t, err)
		assert.Equal(t, []string{"p"}, parents)
	}
	assert.Equal(t, 1, counting.parentCalls)

	// Neighbors reuses the memoized parent read and fills the other caches.
	_, err := g.Neighbors(context.Background(), "c")
	require.NoError(t, err)
	_, err = g.Neighbors(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, 1, counting.parentCalls)
	assert.Equal(t, 1, counting.childCalls)
	assert.Equal(t, 1, counting.spouseCalls)
}

func TestCachedGraph_NeighborsMergesAndSorts(t *testing.T) {
	inner := mocks.NewGraph(testTree)
	inner.AddParent("zeta", "x")
	inner.AddParent("x", "alpha")
	inner.AddUnion("x", "mid")
	inner.AddUnion("x", "alpha") // overlap with the child edge

	g := newCachedGraph(inner, testTree)
	neighbors, err := g.Neighbors(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, neighbors)
}
