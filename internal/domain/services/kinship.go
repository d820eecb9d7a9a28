package services

import (
	"context"
	"fmt"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// KinshipService is the single entry point for relationship queries. It runs
// the named classifiers in priority order, falls back to the bounded
// breadth-first search, and assembles the final result through the label
// service. The service is stateless and read-only: one instance is safe for
// concurrent queries sharing one graph provider.
type KinshipService struct {
	graph       ports.GraphProvider
	labels      *LabelService
	locale      string
	maxDepth    int
	classifiers []classifier
}

// NewKinshipService creates a new KinshipService. Labels resolve in the given
// locale, falling back to English for missing vocabulary. maxDepth bounds the
// fallback search when a query does not supply its own; pass 0 to use
// DefaultMaxDepth.
func NewKinshipService(graph ports.GraphProvider, labels *LabelService, locale string, maxDepth int) *KinshipService {
	if locale == "" {
		locale = entities.LocaleEnglish
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &KinshipService{
		graph:       graph,
		labels:      labels,
		locale:      locale,
		maxDepth:    maxDepth,
		classifiers: namedClassifiers(),
	}
}

// FindRelationshipPath determines how personB relates to personA within one
// tree and returns a path connecting them plus a display label worded from
// personB's point of view (personB's sex picks the gendered variant).
//
// maxDepth bounds only the fallback search; pass 0 to use the service's
// configured bound. Unknown ids, cross-tree ids, and absent paths come back as
// terminal result values, never as errors - only graph provider faults
// propagate as errors.
func (s *KinshipService) FindRelationshipPath(ctx context.Context, treeID, personA, personB string, maxDepth int) (*entities.RelationshipResult, error) {
	refA, err := s.graph.FindPerson(ctx, personA)
	if err != nil {
		return nil, fmt.Errorf("resolving person %s: %w", personA, err)
	}
	refB, err := s.graph.FindPerson(ctx, personB)
	if err != nil {
		return nil, fmt.Errorf("resolving person %s: %w", personB, err)
	}
	if refA == nil || refB == nil {
		return s.terminal(ctx, entities.KindPersonNotFound)
	}
	if refA.TreeID != treeID || refB.TreeID != treeID {
		return s.terminal(ctx, entities.KindInvalidScope)
	}

	g := newCachedGraph(s.graph, treeID)

	for _, c := range s.classifiers {
		cl, err := c.Match(ctx, g, personA, personB)
		if err != nil {
			return nil, fmt.Errorf("classifying %s: %w", c.Kind, err)
		}
		if cl == nil {
			continue
		}
		key, display, err := s.labels.Resolve(ctx, cl.Kind, refB.Sex, s.locale)
		if err != nil {
			return nil, err
		}
		return &entities.RelationshipResult{
			Found:            true,
			PathLength:       len(cl.PathIDs) - 1,
			Kind:             cl.Kind,
			LabelKey:         key,
			DisplayLabel:     display,
			PathIDs:          cl.PathIDs,
			CommonAncestorID: cl.CommonAncestorID,
		}, nil
	}

	if maxDepth <= 0 {
		maxDepth = s.maxDepth
	}
	path, err := findShortestPath(ctx, g, personA, personB, maxDepth)
	if err != nil {
		return nil, err
	}
	if path == nil {
		return s.terminal(ctx, entities.KindNoRelation)
	}

	steps := len(path) - 1
	key, display, err := s.labels.ResolveRelated(ctx, s.locale, steps)
	if err != nil {
		return nil, err
	}
	return &entities.RelationshipResult{
		Found:        true,
		PathLength:   steps,
		Kind:         entities.KindRelated,
		LabelKey:     key,
		DisplayLabel: display,
		PathIDs:      path,
	}, nil
}

// terminal builds a non-relation outcome with its vocabulary label.
func (s *KinshipService) terminal(ctx context.Context, kind entities.Kind) (*entities.RelationshipResult, error) {
	key, display, err := s.labels.Resolve(ctx, kind, entities.SexUnknown, s.locale)
	if err != nil {
		return nil, err
	}
	return &entities.RelationshipResult{
		Found:        false,
		PathLength:   -1,
		Kind:         kind,
		LabelKey:     key,
		DisplayLabel: display,
	}, nil
}
