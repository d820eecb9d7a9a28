package services

import (
	"context"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

// classification is a successful classifier match: the kind, the full walk
// from a to b, and the shared ancestor justifying the match where one exists.
type classification struct {
	Kind             entities.Kind
	PathIDs          []string
	CommonAncestorID string
}

// classifier is one named relationship predicate plus its path constructor.
// Match returns nil when the relation does not hold.
type classifier struct {
	Kind  entities.Kind
	Match func(ctx context.Context, g *cachedGraph, a, b string) (*classification, error)
}

// namedClassifiers returns the fixed-priority classifier list. The order is
// load-bearing: closer, more specific relations must win over looser ones
// that a plain path search would also satisfy (a grandparent is reachable at
// distance 2, but must never be labeled generically). Exposed as a slice so
// the ordering is inspectable and testable in isolation.
func namedClassifiers() []classifier {
	return []classifier{
		{entities.KindSelf, matchSelf},
		{entities.KindParent, matchParent},
		{entities.KindChild, matchChild},
		{entities.KindSpouse, matchSpouse},
		{entities.KindSibling, matchSibling},
		{entities.KindGrandparent, matchGrandparent},
		{entities.KindGrandchild, matchGrandchild},
		{entities.KindUncleAunt, matchUncleAunt},
		{entities.KindNephewNiece, matchNephewNiece},
		{entities.KindCousin, matchCousin},
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// sharedParent returns the first shared parent of x and y in sorted order,
// or "" when they share none. When multiple shared parents exist any one
// justifies the sibling relation; no full/half distinction is computed.
func sharedParent(ctx context.Context, g *cachedGraph, x, y string) (string, error) {
	px, err := g.Parents(ctx, x)
	if err != nil {
		return "", err
	}
	py, err := g.Parents(ctx, y)
	if err != nil {
		return "", err
	}
	for _, p := range px {
		if contains(py, p) {
			return p, nil
		}
	}
	return "", nil
}

func matchSelf(_ context.Context, _ *cachedGraph, a, b string) (*classification, error) {
	if a != b {
		return nil, nil
	}
	return &classification{Kind: entities.KindSelf, PathIDs: []string{a}}, nil
}

func matchParent(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	parents, err := g.Parents(ctx, a)
	if err != nil {
		return nil, err
	}
	if !contains(parents, b) {
		return nil, nil
	}
	return &classification{Kind: entities.KindParent, PathIDs: []string{a, b}}, nil
}

func matchChild(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	children, err := g.Children(ctx, a)
	if err != nil {
		return nil, err
	}
	if !contains(children, b) {
		return nil, nil
	}
	return &classification{Kind: entities.KindChild, PathIDs: []string{a, b}}, nil
}

func matchSpouse(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	spouses, err := g.Spouses(ctx, a)
	if err != nil {
		return nil, err
	}
	if !contains(spouses, b) {
		return nil, nil
	}
	return &classification{Kind: entities.KindSpouse, PathIDs: []string{a, b}}, nil
}

func matchSibling(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	if a == b {
		return nil, nil
	}
	p, err := sharedParent(ctx, g, a, b)
	if err != nil || p == "" {
		return nil, err
	}
	return &classification{
		Kind:             entities.KindSibling,
		PathIDs:          []string{a, p, b},
		CommonAncestorID: p,
	}, nil
}

func matchGrandparent(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	parents, err := g.Parents(ctx, a)
	if err != nil {
		return nil, err
	}
	for _, p := range parents {
		grandparents, err := g.Parents(ctx, p)
		if err != nil {
			return nil, err
		}
		if contains(grandparents, b) {
			return &classification{Kind: entities.KindGrandparent, PathIDs: []string{a, p, b}}, nil
		}
	}
	return nil, nil
}

func matchGrandchild(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	children, err := g.Children(ctx, a)
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		grandchildren, err := g.Children(ctx, c)
		if err != nil {
			return nil, err
		}
		if contains(grandchildren, b) {
			return &classification{Kind: entities.KindGrandchild, PathIDs: []string{a, c, b}}, nil
		}
	}
	return nil, nil
}

// matchUncleAunt matches b as a sibling of one of a's parents. The exclusion
// guard keeps a parent with multiple recorded parent-edges from being
// misreported as an uncle: b must not itself be a parent of a.
func matchUncleAunt(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	parents, err := g.Parents(ctx, a)
	if err != nil {
		return nil, err
	}
	if contains(parents, b) {
		return nil, nil
	}
	for _, p := range parents {
		if p == b {
			continue
		}
		gp, err := sharedParent(ctx, g, p, b)
		if err != nil {
			return nil, err
		}
		if gp != "" {
			return &classification{
				Kind:             entities.KindUncleAunt,
				PathIDs:          []string{a, p, gp, b},
				CommonAncestorID: gp,
			}, nil
		}
	}
	return nil, nil
}

// matchNephewNiece is the inverse of matchUncleAunt: b is a child of one of
// a's siblings, excluding a's own children.
func matchNephewNiece(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	ownChildren, err := g.Children(ctx, a)
	if err != nil {
		return nil, err
	}
	if contains(ownChildren, b) {
		return nil, nil
	}
	bParents, err := g.Parents(ctx, b)
	if err != nil {
		return nil, err
	}
	for _, s := range bParents {
		if s == a {
			continue
		}
		p, err := sharedParent(ctx, g, a, s)
		if err != nil {
			return nil, err
		}
		if p != "" {
			return &classification{
				Kind:             entities.KindNephewNiece,
				PathIDs:          []string{a, p, s, b},
				CommonAncestorID: p,
			}, nil
		}
	}
	return nil, nil
}

// matchCousin matches first cousins: a and b reach a shared grandparent via
// different parents. Siblings and half-siblings share a parent and must never
// be reported as cousins, so any shared parent disqualifies the match.
func matchCousin(ctx context.Context, g *cachedGraph, a, b string) (*classification, error) {
	if p, err := sharedParent(ctx, g, a, b); err != nil || p != "" {
		return nil, err
	}
	aParents, err := g.Parents(ctx, a)
	if err != nil {
		return nil, err
	}
	bParents, err := g.Parents(ctx, b)
	if err != nil {
		return nil, err
	}
	for _, p := range aParents {
		for _, q := range bParents {
			if p == q {
				continue
			}
			gp, err := sharedParent(ctx, g, p, q)
			if err != nil {
				return nil, err
			}
			if gp != "" {
				return &classification{
					Kind:             entities.KindCousin,
					PathIDs:          []string{a, p, gp, q, b},
					CommonAncestorID: gp,
				}, nil
			}
		}
	}
	return nil, nil
}
