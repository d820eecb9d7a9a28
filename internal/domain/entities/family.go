package entities

import "time"

// EdgeType qualifies how a parent-child edge was established. The resolution
// engine treats any edge between a pair as establishing the relation and does
// not disambiguate by type; the type is carried for display and export.
type EdgeType string

const (
	EdgeBiological EdgeType = "biological"
	EdgeAdoptive   EdgeType = "adoptive"
	EdgeStep       EdgeType = "step"
)

// ParentChildEdge is a directed parent -> child link. Multiple edges may
// exist for the same pair with different types.
type ParentChildEdge struct {
	ID        string    `json:"id"`
	TreeID    string    `json:"tree_id"`
	ParentID  string    `json:"parent_id"`
	ChildID   string    `json:"child_id"`
	Type      EdgeType  `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// Union is a group of two or more people who are or were partners.
// Polygamous unions are supported: a union may have more than two members.
// Two people are spouses when they co-occur in the same union.
type Union struct {
	ID        string    `json:"id"`
	TreeID    string    `json:"tree_id"`
	MemberIDs []string  `json:"member_ids"`
	CreatedAt time.Time `json:"created_at"`
}
