package services

import (
	"context"
	"sort"

	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// cachedGraph memoizes GraphProvider reads for the duration of one query so
// that classifier probes and BFS expansions don't repeat round trips to the
// backing store. It is not safe for concurrent use; the facade constructs a
// fresh one per query.
type cachedGraph struct {
	inner   ports.GraphProvider
	treeID  string
	parents map[string][]string
	childs  map[string][]string
	spouses map[string][]string
}

func newCachedGraph(inner ports.GraphProvider, treeID string) *cachedGraph {
	return &cachedGraph{
		inner:   inner,
		treeID:  treeID,
		parents: make(map[string][]string),
		childs:  make(map[string][]string),
		spouses: make(map[string][]string),
	}
}

// sortedCopy returns a sorted copy so traversal order is deterministic even
// when the provider returns edges in arbitrary order.
func sortedCopy(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}

func (g *cachedGraph) Parents(ctx context.Context, personID string) ([]string, error) {
	if ids, ok := g.parents[personID]; ok {
		return ids, nil
	}
	ids, err := g.inner.GetParents(ctx, g.treeID, personID)
	if err != nil {
		return nil, err
	}
	ids = sortedCopy(ids)
	g.parents[personID] = ids
	return ids, nil
}

func (g *cachedGraph) Children(ctx context.Context, personID string) ([]string, error) {
	if ids, ok := g.childs[personID]; ok {
		return ids, nil
	}
	ids, err := g.inner.GetChildren(ctx, g.treeID, personID)
	if err != nil {
		return nil, err
	}
	ids = sortedCopy(ids)
	g.childs[personID] = ids
	return ids, nil
}

func (g *cachedGraph) Spouses(ctx context.Context, personID string) ([]string, error) {
	if ids, ok := g.spouses[personID]; ok {
		return ids, nil
	}
	ids, err := g.inner.GetSpouses(ctx, g.treeID, personID)
	if err != nil {
		return nil, err
	}
	ids = sortedCopy(ids)
	g.spouses[personID] = ids
	return ids, nil
}

// Neighbors returns the undirected neighborhood used by the pathfinder:
// parents, children, and spouses, deduplicated, in sorted order.
func (g *cachedGraph) Neighbors(ctx context.Context, personID string) ([]string, error) {
	parents, err := g.Parents(ctx, personID)
	if err != nil {
		return nil, err
	}
	children, err := g.Children(ctx, personID)
	if err != nil {
		return nil, err
	}
	spouses, err := g.Spouses(ctx, personID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(parents)+len(children)+len(spouses))
	merged := make([]string, 0, len(parents)+len(children)+len(spouses))
	for _, group := range [][]string{parents, children, spouses} {
		for _, id := range group {
			if id == personID || seen[id] {
				continue
			}
			seen[id] = true
			merged = append(merged, id)
		}
	}
	sort.Strings(merged)
	return merged, nil
}
