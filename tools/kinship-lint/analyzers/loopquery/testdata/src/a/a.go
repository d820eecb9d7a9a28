package a

import "context"

type GraphProvider interface {
	GetParents(ctx context.Context, treeID, personID string) ([]string, error)
	GetSpouses(ctx context.Context, treeID, personID string) ([]string, error)
}

func bad(ctx context.Context, ids []string, g GraphProvider) {
	for _, id := range ids {
		g.GetParents(ctx, "t", id) // want "potential N\\+1: GetParents called inside loop"
		g.GetSpouses(ctx, "t", id) // want "potential N\\+1: GetSpouses called inside loop"
	}
}

func good(ctx context.Context, ids []string) {
	// No provider reads - should not flag
	for _, id := range ids {
		_ = len(id)
	}
}
