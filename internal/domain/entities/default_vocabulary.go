package entities

// LabelKeyFor returns the canonical localization key for a (kind, sex) pair.
// Keys are locale-independent; gendered keys exist only for the kinds that
// have gendered vocabulary. Unknown sex falls back to the neutral key.
func LabelKeyFor(kind Kind, sex Sex) string {
	gendered := map[Kind][2]string{
		KindParent:      {"relationship.father", "relationship.mother"},
		KindChild:       {"relationship.son", "relationship.daughter"},
		KindSpouse:      {"relationship.husband", "relationship.wife"},
		KindSibling:     {"relationship.brother", "relationship.sister"},
		KindGrandparent: {"relationship.grandfather", "relationship.grandmother"},
		KindGrandchild:  {"relationship.grandson", "relationship.granddaughter"},
		KindUncleAunt:   {"relationship.uncle", "relationship.aunt"},
		KindNephewNiece: {"relationship.nephew", "relationship.niece"},
	}
	if pair, ok := gendered[kind]; ok {
		switch sex {
		case SexMale:
			return pair[0]
		case SexFemale:
			return pair[1]
		}
	}
	return "relationship." + string(kind)
}

// DefaultVocabulary is the built-in relationship label vocabulary seeded on
// tree creation. English is complete; Arabic and Nobiin cover the core kin
// terms and fall back to English where absent. Users can override any row.
//
// Nobiin entries are romanized; script variants belong in user overrides.
var DefaultVocabulary = []LabelEntry{
	// English
	{Kind: KindSelf, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Self"},
	{Kind: KindParent, Sex: SexMale, Locale: LocaleEnglish, Display: "Father"},
	{Kind: KindParent, Sex: SexFemale, Locale: LocaleEnglish, Display: "Mother"},
	{Kind: KindParent, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Parent"},
	{Kind: KindChild, Sex: SexMale, Locale: LocaleEnglish, Display: "Son"},
	{Kind: KindChild, Sex: SexFemale, Locale: LocaleEnglish, Display: "Daughter"},
	{Kind: KindChild, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Child"},
	{Kind: KindSpouse, Sex: SexMale, Locale: LocaleEnglish, Display: "Husband"},
	{Kind: KindSpouse, Sex: SexFemale, Locale: LocaleEnglish, Display: "Wife"},
	{Kind: KindSpouse, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Spouse"},
	{Kind: KindSibling, Sex: SexMale, Locale: LocaleEnglish, Display: "Brother"},
	{Kind: KindSibling, Sex: SexFemale, Locale: LocaleEnglish, Display: "Sister"},
	{Kind: KindSibling, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Sibling"},
	{Kind: KindGrandparent, Sex: SexMale, Locale: LocaleEnglish, Display: "Grandfather"},
	{Kind: KindGrandparent, Sex: SexFemale, Locale: LocaleEnglish, Display: "Grandmother"},
	{Kind: KindGrandparent, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Grandparent"},
	{Kind: KindGrandchild, Sex: SexMale, Locale: LocaleEnglish, Display: "Grandson"},
	{Kind: KindGrandchild, Sex: SexFemale, Locale: LocaleEnglish, Display: "Granddaughter"},
	{Kind: KindGrandchild, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Grandchild"},
	{Kind: KindUncleAunt, Sex: SexMale, Locale: LocaleEnglish, Display: "Uncle"},
	{Kind: KindUncleAunt, Sex: SexFemale, Locale: LocaleEnglish, Display: "Aunt"},
	{Kind: KindUncleAunt, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Uncle/Aunt"},
	{Kind: KindNephewNiece, Sex: SexMale, Locale: LocaleEnglish, Display: "Nephew"},
	{Kind: KindNephewNiece, Sex: SexFemale, Locale: LocaleEnglish, Display: "Niece"},
	{Kind: KindNephewNiece, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Nephew/Niece"},
	{Kind: KindCousin, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Cousin"},
	{Kind: KindRelated, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Related"},
	{Kind: KindNoRelation, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Not related"},
	{Kind: KindPersonNotFound, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Person not found"},
	{Kind: KindInvalidScope, Sex: SexUnknown, Locale: LocaleEnglish, Display: "Different family trees"},

	// Arabic
	{Kind: KindSelf, Sex: SexUnknown, Locale: LocaleArabic, Display: "نفس الشخص"},
	{Kind: KindParent, Sex: SexMale, Locale: LocaleArabic, Display: "أب"},
	{Kind: KindParent, Sex: SexFemale, Locale: LocaleArabic, Display: "أم"},
	{Kind: KindChild, Sex: SexMale, Locale: LocaleArabic, Display: "ابن"},
	{Kind: KindChild, Sex: SexFemale, Locale: LocaleArabic, Display: "ابنة"},
	{Kind: KindSpouse, Sex: SexMale, Locale: LocaleArabic, Display: "زوج"},
	{Kind: KindSpouse, Sex: SexFemale, Locale: LocaleArabic, Display: "زوجة"},
	{Kind: KindSibling, Sex: SexMale, Locale: LocaleArabic, Display: "أخ"},
	{Kind: KindSibling, Sex: SexFemale, Locale: LocaleArabic, Display: "أخت"},
	{Kind: KindGrandparent, Sex: SexMale, Locale: LocaleArabic, Display: "جد"},
	{Kind: KindGrandparent, Sex: SexFemale, Locale: LocaleArabic, Display: "جدة"},
	{Kind: KindGrandchild, Sex: SexMale, Locale: LocaleArabic, Display: "حفيد"},
	{Kind: KindGrandchild, Sex: SexFemale, Locale: LocaleArabic, Display: "حفيدة"},
	{Kind: KindUncleAunt, Sex: SexMale, Locale: LocaleArabic, Display: "عم"},
	{Kind: KindUncleAunt, Sex: SexFemale, Locale: LocaleArabic, Display: "عمة"},
	{Kind: KindNephewNiece, Sex: SexMale, Locale: LocaleArabic, Display: "ابن الأخ"},
	{Kind: KindNephewNiece, Sex: SexFemale, Locale: LocaleArabic, Display: "بنت الأخ"},
	{Kind: KindCousin, Sex: SexUnknown, Locale: LocaleArabic, Display: "ابن العم"},
	{Kind: KindRelated, Sex: SexUnknown, Locale: LocaleArabic, Display: "قريب"},
	{Kind: KindNoRelation, Sex: SexUnknown, Locale: LocaleArabic, Display: "لا توجد صلة قرابة"},

	// Nobiin (romanized)
	{Kind: KindParent, Sex: SexMale, Locale: LocaleNobiin, Display: "Faab"},
	{Kind: KindParent, Sex: SexFemale, Locale: LocaleNobiin, Display: "Een"},
	{Kind: KindChild, Sex: SexMale, Locale: LocaleNobiin, Display: "Tood"},
	{Kind: KindChild, Sex: SexFemale, Locale: LocaleNobiin, Display: "Buru"},
	{Kind: KindSibling, Sex: SexMale, Locale: LocaleNobiin, Display: "Enga"},
	{Kind: KindSibling, Sex: SexFemale, Locale: LocaleNobiin, Display: "Essi"},
	{Kind: KindGrandparent, Sex: SexMale, Locale: LocaleNobiin, Display: "Ampab"},
	{Kind: KindGrandparent, Sex: SexFemale, Locale: LocaleNobiin, Display: "Annen"},
}
