package services

import (
	"context"
	"fmt"
)

// DefaultMaxDepth bounds the fallback search when the caller does not supply
// a limit. Fifteen edges is far beyond any named relation and covers the
// distant-kin lookups the product surfaces.
const DefaultMaxDepth = 15

// findShortestPath runs a breadth-first search over the undirected union of
// parent, child, and spouse edges from one person to another. It returns the
// full walk including both endpoints, or nil when no path exists within
// maxDepth edges.
//
// BFS order guarantees the result is shortest by edge count. When several
// shortest paths exist the one returned follows sorted neighbor order, so
// repeated calls over the same graph are stable. The visited set is the sole
// cycle-safety mechanism: the search terminates even over cyclic or
// malformed parent-child data. The depth bound is enforced before the
// cancellation check; cancellation is consulted at every frontier expansion
// so pathological graphs cannot run unbounded.
func findShortestPath(ctx context.Context, g *cachedGraph, from, to string, maxDepth int) ([]string, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if from == to {
		return []string{from}, nil
	}

	type node struct {
		id   string
		path []string
	}

	visited := map[string]bool{from: true}
	queue := []node{{id: from, path: []string{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Depth of cur.path's tip in edges; children of a node at the
		// depth limit are out of bounds.
		if len(cur.path)-1 >= maxDepth {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("path search canceled: %w", err)
		}

		neighbors, err := g.Neighbors(ctx, cur.id)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", cur.id, err)
		}
		for _, next := range neighbors {
			if visited[next] {
				continue
			}
			visited[next] = true

			path := make([]string, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = next

			if next == to {
				return path, nil
			}
			queue = append(queue, node{id: next, path: path})
		}
	}
	return nil, nil
}
