package mocks

import (
	"context"
	"sort"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

// Vocabulary is a mock implementation of ports.Vocabulary backed by a map.
type Vocabulary struct {
	Entries map[string]entities.LabelEntry // keyed by kind|sex|locale
	Err     error
}

// NewVocabulary creates a mock vocabulary preloaded with the default label
// set, the same rows the SQLite store seeds on tree creation.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{Entries: make(map[string]entities.LabelEntry)}
	for _, entry := range entities.DefaultVocabulary {
		e := entry
		e.LabelKey = entities.LabelKeyFor(e.Kind, e.Sex)
		v.Entries[vocabKey(e.Kind, e.Sex, e.Locale)] = e
	}
	return v
}

func vocabKey(kind entities.Kind, sex entities.Sex, locale string) string {
	return string(kind) + "|" + string(sex) + "|" + locale
}

// Lookup returns the display label for a (kind, sex, locale) triple.
func (v *Vocabulary) Lookup(_ context.Context, kind entities.Kind, sex entities.Sex, locale string) (string, error) {
	if v.Err != nil {
		return "", v.Err
	}
	return v.Entries[vocabKey(kind, sex, locale)].Display, nil
}

// ListLabels returns all vocabulary rows for a locale, sorted by label key.
func (v *Vocabulary) ListLabels(_ context.Context, locale string) ([]entities.LabelEntry, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	result := make([]entities.LabelEntry, 0, len(v.Entries))
	for _, e := range v.Entries {
		if locale == "" || e.Locale == locale {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].LabelKey != result[j].LabelKey {
			return result[i].LabelKey < result[j].LabelKey
		}
		return result[i].Locale < result[j].Locale
	})
	return result, nil
}

// SaveLabel inserts or overwrites one vocabulary row.
func (v *Vocabulary) SaveLabel(_ context.Context, entry *entities.LabelEntry) error {
	if v.Err != nil {
		return v.Err
	}
	e := *entry
	if e.LabelKey == "" {
		e.LabelKey = entities.LabelKeyFor(e.Kind, e.Sex)
	}
	v.Entries[vocabKey(e.Kind, e.Sex, e.Locale)] = e
	return nil
}
