// Package entities contains core domain data structures.
package entities

import (
	"strings"
	"time"
)

// Sex is the recorded sex of a person, used to pick gendered relationship labels.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ParseSex normalizes a user-supplied sex string. Anything unrecognized
// maps to SexUnknown rather than failing; sex only affects label choice.
func ParseSex(s string) Sex {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return SexMale
	case "female", "f":
		return SexFemale
	default:
		return SexUnknown
	}
}

// Person represents one node in a family graph. The engine treats it as an
// immutable read-only record; identity and sex are assumed already resolved.
type Person struct {
	ID             string    `json:"id"`
	TreeID         string    `json:"tree_id"`
	Name           string    `json:"name"`            // Original name (e.g., "Sara")
	NormalizedName string    `json:"normalized_name"` // Lowercase for matching (e.g., "sara")
	Sex            Sex       `json:"sex"`
	Deceased       bool      `json:"deceased"` // Display only, never used in relationship math
	CreatedAt      time.Time `json:"created_at"`
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
