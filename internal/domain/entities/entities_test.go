package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSex(t *testing.T) {
	tests := []struct {
		in   string
		want Sex
	}{
		{"male", SexMale},
		{"m", SexMale},
		{"Female", SexFemale},
		{"F", SexFemale},
		{"", SexUnknown},
		{"other", SexUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSex(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ali hassan", NormalizeName("  Ali Hassan "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestKindTerminal(t *testing.T) {
	for _, k := range []Kind{KindNoRelation, KindPersonNotFound, KindInvalidScope} {
		assert.True(t, k.Terminal(), "%s", k)
	}
	for _, k := range []Kind{KindSelf, KindParent, KindCousin, KindRelated} {
		assert.False(t, k.Terminal(), "%s", k)
	}
}

func TestLabelKeyFor(t *testing.T) {
	tests := []struct {
		kind Kind
		sex  Sex
		want string
	}{
		{KindParent, SexMale, "relationship.father"},
		{KindParent, SexFemale, "relationship.mother"},
		{KindParent, SexUnknown, "relationship.parent"},
		{KindCousin, SexMale, "relationship.cousin"},
		{KindSelf, SexUnknown, "relationship.self"},
		{KindNoRelation, SexUnknown, "relationship.no_relation"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelKeyFor(tt.kind, tt.sex))
	}
}

func TestDefaultVocabulary_EnglishCoversEveryKind(t *testing.T) {
	kinds := []Kind{
		KindSelf, KindParent, KindChild, KindSpouse, KindSibling,
		KindGrandparent, KindGrandchild, KindUncleAunt, KindNephewNiece,
		KindCousin, KindRelated, KindNoRelation, KindPersonNotFound,
		KindInvalidScope,
	}
	english := make(map[Kind]bool)
	for _, e := range DefaultVocabulary {
		if e.Locale == LocaleEnglish {
			english[e.Kind] = true
		}
	}
	for _, k := range kinds {
		assert.True(t, english[k], "no English label for %s", k)
	}
}
