package services

import (
	"context"
	"fmt"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
)

// LabelService resolves (kind, sex, locale) to a localization key and a
// display label using an injected vocabulary. Resolution is a pure lookup;
// the service only supplies the fallback chain.
type LabelService struct {
	vocab ports.Vocabulary
}

// NewLabelService creates a new LabelService.
func NewLabelService(vocab ports.Vocabulary) *LabelService {
	return &LabelService{vocab: vocab}
}

// Resolve returns the localization key and display label for a classification
// outcome. Fallback order: exact (kind, sex, locale), sex-neutral row in the
// locale, exact pair in English, sex-neutral English. If the vocabulary has
// no row at all the key itself is returned as the display label so callers
// always have something to render.
func (s *LabelService) Resolve(ctx context.Context, kind entities.Kind, sex entities.Sex, locale string) (string, string, error) {
	key := entities.LabelKeyFor(kind, sex)

	type probe struct {
		sex    entities.Sex
		locale string
	}
	probes := []probe{
		{sex, locale},
		{entities.SexUnknown, locale},
		{sex, entities.LocaleEnglish},
		{entities.SexUnknown, entities.LocaleEnglish},
	}
	for _, p := range probes {
		if p.locale == "" {
			continue
		}
		display, err := s.vocab.Lookup(ctx, kind, p.sex, p.locale)
		if err != nil {
			return "", "", fmt.Errorf("looking up label %s/%s/%s: %w", kind, p.sex, p.locale, err)
		}
		if display != "" {
			return key, display, nil
		}
	}
	return key, key, nil
}

// ResolveRelated returns the label for a generic BFS result, with the step
// count appended to the base vocabulary word.
func (s *LabelService) ResolveRelated(ctx context.Context, locale string, steps int) (string, string, error) {
	key, base, err := s.Resolve(ctx, entities.KindRelated, entities.SexUnknown, locale)
	if err != nil {
		return "", "", err
	}
	return key, fmt.Sprintf("%s (%d steps)", base, steps), nil
}
