package entities

// Kind identifies one named relationship classification, the generic BFS
// fallback, or one of the terminal non-relation outcomes.
type Kind string

const (
	KindSelf        Kind = "self"
	KindParent      Kind = "parent"
	KindChild       Kind = "child"
	KindSpouse      Kind = "spouse"
	KindSibling     Kind = "sibling"
	KindGrandparent Kind = "grandparent"
	KindGrandchild  Kind = "grandchild"
	KindUncleAunt   Kind = "uncle_aunt"
	KindNephewNiece Kind = "nephew_niece"
	KindCousin      Kind = "cousin"

	// KindRelated is the generic outcome for paths found by the bounded
	// breadth-first search when no named classifier matched.
	KindRelated Kind = "related"

	// Terminal outcomes. These are ordinary result values, not errors:
	// callers render them directly without special-casing.
	KindNoRelation     Kind = "no_relation"
	KindPersonNotFound Kind = "person_not_found"
	KindInvalidScope   Kind = "invalid_scope"
)

// Terminal reports whether the kind is a non-relation outcome rather than a
// classification of an existing path.
func (k Kind) Terminal() bool {
	return k == KindNoRelation || k == KindPersonNotFound || k == KindInvalidScope
}

// RelationshipResult is the outcome of one relationship query. Constructed
// once per query, immutable, never persisted.
//
// PathIDs is the full walk from the query's first person to the second, both
// endpoints included; every consecutive pair is connected by a parent, child,
// or spouse edge. PathLength is the edge count of that walk (0 for self,
// -1 for terminal outcomes). CommonAncestorID is set only for classifications
// justified by a shared ancestor (sibling, uncle/aunt, nephew/niece, cousin).
type RelationshipResult struct {
	Found            bool     `json:"found"`
	PathLength       int      `json:"path_length"`
	Kind             Kind     `json:"kind"`
	LabelKey         string   `json:"label_key"`
	DisplayLabel     string   `json:"display_label"`
	PathIDs          []string `json:"path_ids,omitempty"`
	CommonAncestorID string   `json:"common_ancestor_id,omitempty"`
}
