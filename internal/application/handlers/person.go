package handlers

import (
	"context"
	"fmt"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
	"github.com/nileroots/kinship-core/internal/domain/services"
)

// PersonHandler handles person, edge, and union operations.
type PersonHandler struct {
	service *services.PersonService
	db      ports.FamilyDB
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(service *services.PersonService, db ports.FamilyDB) *PersonHandler {
	return &PersonHandler{service: service, db: db}
}

// HandleAdd creates a new person.
func (h *PersonHandler) HandleAdd(ctx context.Context, treeID, name, sex string, deceased bool) (*entities.Person, error) {
	return h.service.Add(ctx, treeID, name, entities.ParseSex(sex), deceased)
}

// ListResult contains a page of people plus the tree total.
type ListResult struct {
	People []*entities.Person `json:"people"`
	Total  int                `json:"total"`
}

// HandleList returns a page of people in the tree.
func (h *PersonHandler) HandleList(ctx context.Context, treeID string, limit, offset int) (*ListResult, error) {
	people, err := h.service.List(ctx, treeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	total, err := h.db.CountPersons(ctx, treeID)
	if err != nil {
		return nil, fmt.Errorf("counting people: %w", err)
	}
	return &ListResult{People: people, Total: total}, nil
}

// PersonDetail is one person with their immediate family.
type PersonDetail struct {
	Person   *entities.Person   `json:"person"`
	Parents  []*entities.Person `json:"parents,omitempty"`
	Children []*entities.Person `json:"children,omitempty"`
	Spouses  []*entities.Person `json:"spouses,omitempty"`
}

// HandleShow returns a person and their immediate family.
func (h *PersonHandler) HandleShow(ctx context.Context, treeID, nameOrID string) (*PersonDetail, error) {
	person, err := h.service.Resolve(ctx, treeID, nameOrID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, fmt.Errorf("person not found: %s", nameOrID)
	}

	detail := &PersonDetail{Person: person}
	for _, group := range []struct {
		fetch func(context.Context, string, string) ([]string, error)
		dst   *[]*entities.Person
	}{
		{h.db.GetParents, &detail.Parents},
		{h.db.GetChildren, &detail.Children},
		{h.db.GetSpouses, &detail.Spouses},
	} {
		ids, err := group.fetch(ctx, treeID, person.ID)
		if err != nil {
			return nil, fmt.Errorf("loading family of %s: %w", person.ID, err)
		}
		for _, id := range ids {
			relative, err := h.service.Get(ctx, treeID, id)
			if err != nil {
				return nil, err
			}
			if relative != nil {
				*group.dst = append(*group.dst, relative)
			}
		}
	}
	return detail, nil
}

// HandleDelete removes a person by name or id.
func (h *PersonHandler) HandleDelete(ctx context.Context, treeID, nameOrID string) error {
	person, err := h.service.Resolve(ctx, treeID, nameOrID)
	if err != nil {
		return err
	}
	if person == nil {
		return fmt.Errorf("person not found: %s", nameOrID)
	}
	return h.service.Delete(ctx, treeID, person.ID)
}

// HandleLinkParent records a parent -> child edge between two people
// referenced by name or id.
func (h *PersonHandler) HandleLinkParent(ctx context.Context, treeID, parent, child, edgeType string) (*entities.ParentChildEdge, error) {
	parentPerson, err := h.service.Resolve(ctx, treeID, parent)
	if err != nil {
		return nil, err
	}
	childPerson, err := h.service.Resolve(ctx, treeID, child)
	if err != nil {
		return nil, err
	}
	if parentPerson == nil {
		return nil, fmt.Errorf("person not found: %s", parent)
	}
	if childPerson == nil {
		return nil, fmt.Errorf("person not found: %s", child)
	}
	return h.service.LinkParent(ctx, treeID, parentPerson.ID, childPerson.ID, entities.EdgeType(edgeType))
}

// HandleCreateUnion records a union of the named people.
func (h *PersonHandler) HandleCreateUnion(ctx context.Context, treeID string, members []string) (*entities.Union, error) {
	memberIDs := make([]string, 0, len(members))
	for _, m := range members {
		person, err := h.service.Resolve(ctx, treeID, m)
		if err != nil {
			return nil, err
		}
		if person == nil {
			return nil, fmt.Errorf("person not found: %s", m)
		}
		memberIDs = append(memberIDs, person.ID)
	}
	return h.service.CreateUnion(ctx, treeID, memberIDs)
}
