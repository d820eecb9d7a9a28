// Package handlers wires domain services to the CLI surface.
package handlers

import (
	"context"
	"fmt"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/services"
)

// RelateResult pairs a relationship query outcome with the resolved people
// so callers can render names instead of ids.
type RelateResult struct {
	PersonA *entities.Person            `json:"person_a"`
	PersonB *entities.Person            `json:"person_b"`
	Result  entities.RelationshipResult `json:"result"`
}

// RelateHandler handles relationship queries.
type RelateHandler struct {
	kinship *services.KinshipService
	persons *services.PersonService
}

// NewRelateHandler creates a new RelateHandler.
func NewRelateHandler(kinship *services.KinshipService, persons *services.PersonService) *RelateHandler {
	return &RelateHandler{kinship: kinship, persons: persons}
}

// HandleRelate resolves both people by name or id and answers how the second
// relates to the first. Unresolvable names still produce a person-not-found
// result rather than an error, matching the engine's own failure mode.
func (h *RelateHandler) HandleRelate(ctx context.Context, treeID, nameOrIDA, nameOrIDB string, maxDepth int) (*RelateResult, error) {
	personA, err := h.persons.Resolve(ctx, treeID, nameOrIDA)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", nameOrIDA, err)
	}
	personB, err := h.persons.Resolve(ctx, treeID, nameOrIDB)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", nameOrIDB, err)
	}

	idA, idB := nameOrIDA, nameOrIDB
	if personA != nil {
		idA = personA.ID
	}
	if personB != nil {
		idB = personB.ID
	}

	result, err := h.kinship.FindRelationshipPath(ctx, treeID, idA, idB, maxDepth)
	if err != nil {
		return nil, fmt.Errorf("finding relationship: %w", err)
	}

	return &RelateResult{
		PersonA: personA,
		PersonB: personB,
		Result:  *result,
	}, nil
}

// ResolvePath maps a result's path ids back to people for display. Ids that
// no longer resolve are returned as nil entries rather than failing the
// whole render.
func (h *RelateHandler) ResolvePath(ctx context.Context, treeID string, pathIDs []string) ([]*entities.Person, error) {
	people := make([]*entities.Person, len(pathIDs))
	for i, id := range pathIDs {
		person, err := h.persons.Get(ctx, treeID, id)
		if err != nil {
			return nil, fmt.Errorf("resolving path id %s: %w", id, err)
		}
		people[i] = person
	}
	return people, nil
}
