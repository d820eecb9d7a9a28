package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/mocks"
)

func TestLabelService_Resolve(t *testing.T) {
	svc := NewLabelService(mocks.NewVocabulary())

	tests := []struct {
		name    string
		kind    entities.Kind
		sex     entities.Sex
		locale  string
		key     string
		display string
	}{
		{"gendered english", entities.KindParent, entities.SexMale, "en", "relationship.father", "Father"},
		{"gendered arabic", entities.KindParent, entities.SexFemale, "ar", "relationship.mother", "أم"},
		{"gendered nobiin", entities.KindSibling, entities.SexFemale, "fia", "relationship.sister", "Essi"},
		{"unknown sex uses neutral row", entities.KindChild, entities.SexUnknown, "en", "relationship.child", "Child"},
		{"ungendered kind ignores sex", entities.KindCousin, entities.SexMale, "en", "relationship.cousin", "Cousin"},
		{"missing locale row falls back to english", entities.KindCousin, entities.SexUnknown, "fia", "relationship.cousin", "Cousin"},
		{"unknown locale falls back to english", entities.KindParent, entities.SexMale, "sw", "relationship.father", "Father"},
		{"terminal kind", entities.KindNoRelation, entities.SexUnknown, "en", "relationship.no_relation", "Not related"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, display, err := svc.Resolve(context.Background(), tt.kind, tt.sex, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.display, display)
		})
	}
}

func TestLabelService_Resolve_SexNeutralFallbackWithinLocale(t *testing.T) {
	// Arabic has no neutral parent row, but a vocabulary that carries one
	// must win over the English gendered row.
	vocab := mocks.NewVocabulary()
	err := vocab.SaveLabel(context.Background(), &entities.LabelEntry{
		Kind:    entities.KindParent,
		Sex:     entities.SexUnknown,
		Locale:  entities.LocaleArabic,
		Display: "والد",
	})
	require.NoError(t, err)

	svc := NewLabelService(vocab)

	// No male Arabic row removed, so exact match still wins.
	_, display, err := svc.Resolve(context.Background(), entities.KindParent, entities.SexMale, "ar")
	require.NoError(t, err)
	assert.Equal(t, "أب", display)

	// Drop the exact row and the neutral Arabic one takes over.
	delete(vocab.Entries, "parent|male|ar")
	_, display, err = svc.Resolve(context.Background(), entities.KindParent, entities.SexMale, "ar")
	require.NoError(t, err)
	assert.Equal(t, "والد", display)
}

func TestLabelService_Resolve_EmptyVocabularyReturnsKey(t *testing.T) {
	svc := NewLabelService(&mocks.Vocabulary{Entries: map[string]entities.LabelEntry{}})

	key, display, err := svc.Resolve(context.Background(), entities.KindParent, entities.SexMale, "en")
	require.NoError(t, err)
	assert.Equal(t, "relationship.father", key)
	assert.Equal(t, key, display)
}

func TestLabelService_Resolve_PropagatesLookupError(t *testing.T) {
	svc := NewLabelService(&mocks.Vocabulary{Err: errors.New("db closed")})

	_, _, err := svc.Resolve(context.Background(), entities.KindParent, entities.SexMale, "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db closed")
}

func TestLabelService_ResolveRelated(t *testing.T) {
	svc := NewLabelService(mocks.NewVocabulary())

	key, display, err := svc.ResolveRelated(context.Background(), "en", 3)
	require.NoError(t, err)
	assert.Equal(t, "relationship.related", key)
	assert.Equal(t, "Related (3 steps)", display)

	_, display, err = svc.ResolveRelated(context.Background(), "ar", 5)
	require.NoError(t, err)
	assert.Equal(t, "قريب (5 steps)", display)
}
