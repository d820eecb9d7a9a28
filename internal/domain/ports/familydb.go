package ports

import (
	"context"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

// FamilyDB defines the persistence interface for one tree's family records.
// It embeds the read-only GraphProvider used by the resolution engine and
// adds the mutation surface the surrounding product needs. Implementations
// back onto a relational store; not-found lookups return (nil, nil).
type FamilyDB interface {
	GraphProvider
	Vocabulary

	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Person operations

	// SavePerson saves or updates a person.
	SavePerson(ctx context.Context, person *entities.Person) error

	// FindPersonByName finds a person by normalized name within a tree.
	FindPersonByName(ctx context.Context, treeID, name string) (*entities.Person, error)

	// FindPersonByID finds a person by id regardless of tree.
	FindPersonByID(ctx context.Context, personID string) (*entities.Person, error)

	// ListPersons lists all persons in a tree with pagination.
	ListPersons(ctx context.Context, treeID string, limit, offset int) ([]*entities.Person, error)

	// DeletePerson deletes a person and all edges and union memberships
	// referring to it.
	DeletePerson(ctx context.Context, personID string) error

	// CountPersons returns the number of persons in a tree.
	CountPersons(ctx context.Context, treeID string) (int, error)

	// Edge operations

	// SaveParentChildEdge saves a directed parent -> child edge.
	SaveParentChildEdge(ctx context.Context, edge *entities.ParentChildEdge) error

	// DeleteParentChildEdge deletes an edge by id.
	DeleteParentChildEdge(ctx context.Context, edgeID string) error

	// ListParentChildEdges lists all edges in a tree.
	ListParentChildEdges(ctx context.Context, treeID string) ([]entities.ParentChildEdge, error)

	// Union operations

	// SaveUnion saves a union and its membership set.
	SaveUnion(ctx context.Context, union *entities.Union) error

	// AddUnionMember adds a person to an existing union.
	AddUnionMember(ctx context.Context, unionID, personID string) error

	// FindUnionByID finds a union with its members.
	FindUnionByID(ctx context.Context, unionID string) (*entities.Union, error)

	// ListUnions lists all unions in a tree.
	ListUnions(ctx context.Context, treeID string) ([]entities.Union, error)

	// DeleteUnion deletes a union and its memberships.
	DeleteUnion(ctx context.Context, unionID string) error

	// Audit operations

	// LogAction logs a mutation to the audit log.
	LogAction(ctx context.Context, action string, personID string, details map[string]any) error

	// FindAuditLog finds audit entries for a person.
	FindAuditLog(ctx context.Context, personID string) ([]entities.AuditEntry, error)
}
