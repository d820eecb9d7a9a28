package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// PersonService manages people, parent-child edges, and unions for a tree.
// All mutations are audited; the relationship query path never writes.
type PersonService struct {
	db ports.FamilyDB
}

// NewPersonService creates a new PersonService.
func NewPersonService(db ports.FamilyDB) *PersonService {
	return &PersonService{db: db}
}

// audit records a mutation. The write happens after the mutation committed,
// so a failure here surfaces as an error without undoing the change.
func (s *PersonService) audit(ctx context.Context, action, personID string, details map[string]any) error {
	if err := s.db.LogAction(ctx, action, personID, details); err != nil {
		return fmt.Errorf("recording audit entry %s: %w", action, err)
	}
	return nil
}

// Add creates a new person in the tree.
func (s *PersonService) Add(ctx context.Context, treeID, name string, sex entities.Sex, deceased bool) (*entities.Person, error) {
	if name == "" {
		return nil, errors.New("person name is required")
	}
	person := &entities.Person{
		ID:             uuid.New().String(),
		TreeID:         treeID,
		Name:           name,
		NormalizedName: entities.NormalizeName(name),
		Sex:            sex,
		Deceased:       deceased,
		CreatedAt:      time.Now(),
	}
	if err := s.db.SavePerson(ctx, person); err != nil {
		return nil, fmt.Errorf("saving person: %w", err)
	}
	if err := s.audit(ctx, "person.add", person.ID, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	return person, nil
}

// Get finds a person by id, verifying it belongs to the tree.
func (s *PersonService) Get(ctx context.Context, treeID, personID string) (*entities.Person, error) {
	person, err := s.db.FindPersonByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if person == nil || person.TreeID != treeID {
		return nil, nil
	}
	return person, nil
}

// Resolve turns a name or id into a person within the tree. Names win over
// ids so that a person literally named like a UUID still resolves.
func (s *PersonService) Resolve(ctx context.Context, treeID, nameOrID string) (*entities.Person, error) {
	person, err := s.db.FindPersonByName(ctx, treeID, nameOrID)
	if err != nil {
		return nil, fmt.Errorf("finding person by name: %w", err)
	}
	if person != nil {
		return person, nil
	}
	return s.Get(ctx, treeID, nameOrID)
}

// List lists people in the tree with pagination.
func (s *PersonService) List(ctx context.Context, treeID string, limit, offset int) ([]*entities.Person, error) {
	return s.db.ListPersons(ctx, treeID, limit, offset)
}

// Delete removes a person together with all edges and union memberships
// referring to it.
func (s *PersonService) Delete(ctx context.Context, treeID, personID string) error {
	person, err := s.Get(ctx, treeID, personID)
	if err != nil {
		return err
	}
	if person == nil {
		return fmt.Errorf("person not found: %s", personID)
	}
	if err := s.db.DeletePerson(ctx, personID); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return s.audit(ctx, "person.delete", personID, nil)
}

// LinkParent records a directed parent -> child edge. Both people must exist
// in the tree and be distinct; an existing edge of the same type between the
// pair is rejected as a duplicate.
func (s *PersonService) LinkParent(ctx context.Context, treeID, parentID, childID string, edgeType entities.EdgeType) (*entities.ParentChildEdge, error) {
	if parentID == childID {
		return nil, errors.New("a person cannot be their own parent")
	}
	if edgeType == "" {
		edgeType = entities.EdgeBiological
	}
	for _, id := range []string{parentID, childID} {
		person, err := s.Get(ctx, treeID, id)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, fmt.Errorf("person not found: %s", id)
		}
	}

	edges, err := s.db.ListParentChildEdges(ctx, treeID)
	if err != nil {
		return nil, fmt.Errorf("listing edges: %w", err)
	}
	for i := range edges {
		if edges[i].ParentID == parentID && edges[i].ChildID == childID && edges[i].Type == edgeType {
			return nil, fmt.Errorf("edge already exists (id: %s)", edges[i].ID)
		}
	}

	edge := &entities.ParentChildEdge{
		ID:        uuid.New().String(),
		TreeID:    treeID,
		ParentID:  parentID,
		ChildID:   childID,
		Type:      edgeType,
		CreatedAt: time.Now(),
	}
	if err := s.db.SaveParentChildEdge(ctx, edge); err != nil {
		return nil, fmt.Errorf("saving edge: %w", err)
	}
	if err := s.audit(ctx, "link.parent", childID, map[string]any{"parent_id": parentID, "type": string(edgeType)}); err != nil {
		return nil, err
	}
	return edge, nil
}

// CreateUnion records a union of two or more people. Polygamous unions are
// supported; all members must exist in the tree.
func (s *PersonService) CreateUnion(ctx context.Context, treeID string, memberIDs []string) (*entities.Union, error) {
	if len(memberIDs) < 2 {
		return nil, errors.New("a union needs at least two members")
	}
	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if seen[id] {
			return nil, fmt.Errorf("duplicate union member: %s", id)
		}
		seen[id] = true
		person, err := s.Get(ctx, treeID, id)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, fmt.Errorf("person not found: %s", id)
		}
	}

	union := &entities.Union{
		ID:        uuid.New().String(),
		TreeID:    treeID,
		MemberIDs: memberIDs,
		CreatedAt: time.Now(),
	}
	if err := s.db.SaveUnion(ctx, union); err != nil {
		return nil, fmt.Errorf("saving union: %w", err)
	}
	if err := s.audit(ctx, "union.create", memberIDs[0], map[string]any{"members": memberIDs}); err != nil {
		return nil, err
	}
	return union, nil
}
