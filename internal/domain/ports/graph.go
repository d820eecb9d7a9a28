package ports

import (
	"context"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

// PersonRef is the minimal person record the resolution engine needs:
// identity, owning tree, and sex for label selection.
type PersonRef struct {
	ID     string
	TreeID string
	Sex    entities.Sex
}

// GraphProvider exposes read-only access to the family graph for one tree.
// It has no mutation methods; implementations must be safe for concurrent
// readers and safe to call repeatedly inside a traversal loop. Callers that
// probe the same person more than once per query should wrap the provider in
// a per-query cache rather than expecting the implementation to memoize.
type GraphProvider interface {
	// FindPerson resolves a person id regardless of tree so that callers can
	// distinguish an unknown id from one belonging to a different tree.
	// Returns nil when the id is unknown everywhere.
	FindPerson(ctx context.Context, personID string) (*PersonRef, error)

	// GetParents returns the ids of all recorded parents of the person,
	// restricted to the tree. Edge type (biological/adoptive/step) is not
	// distinguished. Order must be stable for deterministic traversal.
	GetParents(ctx context.Context, treeID, personID string) ([]string, error)

	// GetChildren returns the ids of all recorded children of the person,
	// restricted to the tree, in stable order.
	GetChildren(ctx context.Context, treeID, personID string) ([]string, error)

	// GetSpouses returns the ids of everyone sharing a union with the
	// person, excluding the person itself, in stable order.
	GetSpouses(ctx context.Context, treeID, personID string) ([]string, error)
}
