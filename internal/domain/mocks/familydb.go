package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// FamilyDB is a mock implementation of ports.FamilyDB holding everything in
// maps. Not safe for concurrent use; tests are single-goroutine.
type FamilyDB struct {
	*Vocabulary
	Persons map[string]*entities.Person
	Edges   map[string]*entities.ParentChildEdge
	Unions  map[string]*entities.Union
	Audit   []entities.AuditEntry
	Err     error
	// AuditErr fails only LogAction, leaving the mutation itself intact.
	AuditErr error
}

// NewFamilyDB creates an empty mock store with the default vocabulary loaded.
func NewFamilyDB() *FamilyDB {
	return &FamilyDB{
		Vocabulary: NewVocabulary(),
		Persons:    make(map[string]*entities.Person),
		Edges:      make(map[string]*entities.ParentChildEdge),
		Unions:     make(map[string]*entities.Union),
	}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *FamilyDB) EnsureSchema(_ context.Context) error { return m.Err }

// Close closes the database connection.
func (m *FamilyDB) Close() error { return nil }

// SavePerson saves or updates a person.
func (m *FamilyDB) SavePerson(_ context.Context, person *entities.Person) error {
	if m.Err != nil {
		return m.Err
	}
	m.Persons[person.ID] = person
	return nil
}

// FindPersonByName finds a person by normalized name within a tree.
func (m *FamilyDB) FindPersonByName(_ context.Context, treeID, name string) (*entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	normalized := entities.NormalizeName(name)
	for _, p := range m.Persons {
		if p.TreeID == treeID && p.NormalizedName == normalized {
			return p, nil
		}
	}
	return nil, nil
}

// FindPersonByID finds a person by id regardless of tree.
func (m *FamilyDB) FindPersonByID(_ context.Context, personID string) (*entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Persons[personID], nil
}

// ListPersons lists all persons in a tree with pagination.
func (m *FamilyDB) ListPersons(_ context.Context, treeID string, limit, offset int) ([]*entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var all []*entities.Person
	for _, p := range m.Persons {
		if p.TreeID == treeID {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return []*entities.Person{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// DeletePerson deletes a person and all edges and memberships referring to it.
func (m *FamilyDB) DeletePerson(_ context.Context, personID string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Persons, personID)
	for id, e := range m.Edges {
		if e.ParentID == personID || e.ChildID == personID {
			delete(m.Edges, id)
		}
	}
	for _, u := range m.Unions {
		members := u.MemberIDs[:0]
		for _, id := range u.MemberIDs {
			if id != personID {
				members = append(members, id)
			}
		}
		u.MemberIDs = members
	}
	return nil
}

// CountPersons returns the number of persons in a tree.
func (m *FamilyDB) CountPersons(_ context.Context, treeID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, p := range m.Persons {
		if p.TreeID == treeID {
			count++
		}
	}
	return count, nil
}

// SaveParentChildEdge saves a directed parent -> child edge.
func (m *FamilyDB) SaveParentChildEdge(_ context.Context, edge *entities.ParentChildEdge) error {
	if m.Err != nil {
		return m.Err
	}
	m.Edges[edge.ID] = edge
	return nil
}

// DeleteParentChildEdge deletes an edge by id.
func (m *FamilyDB) DeleteParentChildEdge(_ context.Context, edgeID string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Edges, edgeID)
	return nil
}

// ListParentChildEdges lists all edges in a tree.
func (m *FamilyDB) ListParentChildEdges(_ context.Context, treeID string) ([]entities.ParentChildEdge, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var edges []entities.ParentChildEdge
	for _, e := range m.Edges {
		if e.TreeID == treeID {
			edges = append(edges, *e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges, nil
}

// SaveUnion saves a union and its membership set.
func (m *FamilyDB) SaveUnion(_ context.Context, union *entities.Union) error {
	if m.Err != nil {
		return m.Err
	}
	m.Unions[union.ID] = union
	return nil
}

// AddUnionMember adds a person to an existing union.
func (m *FamilyDB) AddUnionMember(_ context.Context, unionID, personID string) error {
	if m.Err != nil {
		return m.Err
	}
	u, ok := m.Unions[unionID]
	if !ok {
		return nil
	}
	for _, id := range u.MemberIDs {
		if id == personID {
			return nil
		}
	}
	u.MemberIDs = append(u.MemberIDs, personID)
	return nil
}

// FindUnionByID finds a union with its members.
func (m *FamilyDB) FindUnionByID(_ context.Context, unionID string) (*entities.Union, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Unions[unionID], nil
}

// ListUnions lists all unions in a tree.
func (m *FamilyDB) ListUnions(_ context.Context, treeID string) ([]entities.Union, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var unions []entities.Union
	for _, u := range m.Unions {
		if u.TreeID == treeID {
			unions = append(unions, *u)
		}
	}
	sort.Slice(unions, func(i, j int) bool { return unions[i].ID < unions[j].ID })
	return unions, nil
}

// DeleteUnion deletes a union and its memberships.
func (m *FamilyDB) DeleteUnion(_ context.Context, unionID string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Unions, unionID)
	return nil
}

// LogAction logs a mutation to the audit log.
func (m *FamilyDB) LogAction(_ context.Context, action string, personID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	if m.AuditErr != nil {
		return m.AuditErr
	}
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:        int64(len(m.Audit) + 1),
		Action:    action,
		PersonID:  personID,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// FindAuditLog finds audit entries for a person.
func (m *FamilyDB) FindAuditLog(_ context.Context, personID string) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var entries []entities.AuditEntry
	for _, e := range m.Audit {
		if e.PersonID == personID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// FindPerson resolves a person id regardless of tree.
func (m *FamilyDB) FindPerson(_ context.Context, personID string) (*ports.PersonRef, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.Persons[personID]
	if !ok {
		return nil, nil
	}
	return &ports.PersonRef{ID: p.ID, TreeID: p.TreeID, Sex: p.Sex}, nil
}

// GetParents returns the parents of a person in sorted order.
func (m *FamilyDB) GetParents(_ context.Context, treeID, personID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var ids []string
	for _, e := range m.Edges {
		if e.TreeID == treeID && e.ChildID == personID {
			ids = append(ids, e.ParentID)
		}
	}
	return dedupeSorted(ids), nil
}

// GetChildren returns the children of a person in sorted order.
func (m *FamilyDB) GetChildren(_ context.Context, treeID, personID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var ids []string
	for _, e := range m.Edges {
		if e.TreeID == treeID && e.ParentID == personID {
			ids = append(ids, e.ChildID)
		}
	}
	return dedupeSorted(ids), nil
}

// GetSpouses returns everyone sharing a union with the person.
func (m *FamilyDB) GetSpouses(_ context.Context, treeID, personID string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var ids []string
	for _, u := range m.Unions {
		if u.TreeID != treeID {
			continue
		}
		member := false
		for _, id := range u.MemberIDs {
			if id == personID {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, id := range u.MemberIDs {
			if id != personID {
				ids = append(ids, id)
			}
		}
	}
	return dedupeSorted(ids), nil
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
