// Package mocks provides in-memory implementations of domain ports for tests.
package mocks

import (
	"context"
	"sort"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// Graph is a mock implementation of ports.GraphProvider backed by adjacency
// maps. Build it with AddPerson/AddParent/AddUnion; all lookups return ids in
// sorted order. Set Err to make every call fail.
type Graph struct {
	TreeID  string
	Sexes   map[string]entities.Sex
	parents map[string][]string
	childs  map[string][]string
	unions  [][]string
	Err     error
}

// NewGraph creates an empty mock graph for one tree.
func NewGraph(treeID string) *Graph {
	return &Graph{
		TreeID:  treeID,
		Sexes:   make(map[string]entities.Sex),
		parents: make(map[string][]string),
		childs:  make(map[string][]string),
	}
}

// AddPerson registers a person with the given sex.
func (g *Graph) AddPerson(id string, sex entities.Sex) {
	g.Sexes[id] = sex
}

// AddParent records a parent -> child edge, registering both people with
// unknown sex if they are new.
func (g *Graph) AddParent(parentID, childID string) {
	if _, ok := g.Sexes[parentID]; !ok {
		g.Sexes[parentID] = entities.SexUnknown
	}
	if _, ok := g.Sexes[childID]; !ok {
		g.Sexes[childID] = entities.SexUnknown
	}
	g.parents[childID] = append(g.parents[childID], parentID)
	g.childs[parentID] = append(g.childs[parentID], childID)
}

// AddUnion records a union of the given members.
func (g *Graph) AddUnion(memberIDs ...string) {
	for _, id := range memberIDs {
		if _, ok := g.Sexes[id]; !ok {
			g.Sexes[id] = entities.SexUnknown
		}
	}
	g.unions = append(g.unions, memberIDs)
}

// FindPerson resolves a person id regardless of tree.
func (g *Graph) FindPerson(_ context.Context, personID string) (*ports.PersonRef, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	sex, ok := g.Sexes[personID]
	if !ok {
		return nil, nil
	}
	return &ports.PersonRef{ID: personID, TreeID: g.TreeID, Sex: sex}, nil
}

// GetParents returns the parents of a person in sorted order.
func (g *Graph) GetParents(_ context.Context, treeID, personID string) ([]string, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	if treeID != g.TreeID {
		return nil, nil
	}
	return sorted(g.parents[personID]), nil
}

// GetChildren returns the children of a person in sorted order.
func (g *Graph) GetChildren(_ context.Context, treeID, personID string) ([]string, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	if treeID != g.TreeID {
		return nil, nil
	}
	return sorted(g.childs[personID]), nil
}

// GetSpouses returns everyone sharing a union with the person, excluding the
// person itself, in sorted order.
func (g *Graph) GetSpouses(_ context.Context, treeID, personID string) ([]string, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	if treeID != g.TreeID {
		return nil, nil
	}
	seen := make(map[string]bool)
	var spouses []string
	for _, union := range g.unions {
		member := false
		for _, id := range union {
			if id == personID {
				member = true
				break
			}
		}
		if !member {
			continue
		}
		for _, id := range union {
			if id != personID && !seen[id] {
				seen[id] = true
				spouses = append(spouses, id)
			}
		}
	}
	return sorted(spouses), nil
}

func sorted(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
