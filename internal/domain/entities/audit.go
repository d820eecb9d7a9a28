package entities

import "time"

// AuditEntry represents a logged mutation in a tree's store. Relationship
// queries are side-effect free and never audited.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	PersonID  string         `json:"person_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
