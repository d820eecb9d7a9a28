package entities

import "time"

// Locale codes supported by the default vocabulary. The label store accepts
// arbitrary locale strings; these are just the seeded set.
const (
	LocaleEnglish = "en"
	LocaleArabic  = "ar"
	LocaleNobiin  = "fia"
)

// LabelEntry is one row of the relationship vocabulary: the display word for
// a (kind, sex) pair in one locale. Entries are configuration data seeded on
// tree creation and overridable by users; classifiers never embed strings.
type LabelEntry struct {
	Kind      Kind      `json:"kind"`
	Sex       Sex       `json:"sex"`
	Locale    string    `json:"locale"`
	LabelKey  string    `json:"label_key"`
	Display   string    `json:"display"`
	CreatedAt time.Time `json:"created_at"`
}
