package services

import (
	"context"
	"fmt"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
	"github.com/nileroots/kinship-core/internal/infrastructure/parsers"
)

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	People  int
	Edges   int
	Unions  int
	Skipped int
	Errors  []ImportError
}

// ImportService loads parsed family records into a tree. People are created
// first, then parent edges and unions are resolved by name, so files can
// reference people defined later in the same file.
type ImportService struct {
	db      ports.FamilyDB
	persons *PersonService
}

// NewImportService creates a new import service.
func NewImportService(db ports.FamilyDB, persons *PersonService) *ImportService {
	return &ImportService{db: db, persons: persons}
}

// Import validates and loads raw records into the tree. Records that fail
// validation are reported in the result and skipped; the rest are loaded.
func (s *ImportService) Import(ctx context.Context, treeID string, records []parsers.RawRecord) (*ImportResult, error) {
	result := &ImportResult{}

	// First pass: people.
	for i := range records {
		rec := &records[i]
		if rec.Record != parsers.RecordPerson {
			continue
		}
		if rec.Name == "" {
			result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: "person record without name"})
			result.Skipped++
			continue
		}
		existing, err := s.db.FindPersonByName(ctx, treeID, rec.Name)
		if err != nil {
			return nil, fmt.Errorf("finding person %q: %w", rec.Name, err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}
		if _, err := s.persons.Add(ctx, treeID, rec.Name, entities.ParseSex(rec.Sex), rec.Deceased); err != nil {
			return nil, fmt.Errorf("importing person %q: %w", rec.Name, err)
		}
		result.People++
	}

	// Second pass: edges and unions, resolved by name.
	for i := range records {
		rec := &records[i]
		switch rec.Record {
		case parsers.RecordPerson:
			// handled above
		case parsers.RecordParent:
			if err := s.importParent(ctx, treeID, rec, result); err != nil {
				return nil, err
			}
		case parsers.RecordUnion:
			if err := s.importUnion(ctx, treeID, rec, result); err != nil {
				return nil, err
			}
		default:
			result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: fmt.Sprintf("unknown record type %q", rec.Record)})
			result.Skipped++
		}
	}

	return result, nil
}

func (s *ImportService) importParent(ctx context.Context, treeID string, rec *parsers.RawRecord, result *ImportResult) error {
	if rec.Parent == "" || rec.Child == "" {
		result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: "parent record needs parent and child"})
		result.Skipped++
		return nil
	}
	parent, err := s.resolveName(ctx, treeID, rec.Parent)
	if err != nil {
		return err
	}
	child, err := s.resolveName(ctx, treeID, rec.Child)
	if err != nil {
		return err
	}
	if parent == nil || child == nil {
		result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: "parent record references unknown person"})
		result.Skipped++
		return nil
	}
	if _, err := s.persons.LinkParent(ctx, treeID, parent.ID, child.ID, entities.EdgeType(rec.Type)); err != nil {
		result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: err.Error()})
		result.Skipped++
		return nil
	}
	result.Edges++
	return nil
}

func (s *ImportService) importUnion(ctx context.Context, treeID string, rec *parsers.RawRecord, result *ImportResult) error {
	if len(rec.Members) < 2 {
		result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: "union record needs at least two members"})
		result.Skipped++
		return nil
	}
	memberIDs := make([]string, 0, len(rec.Members))
	for _, name := range rec.Members {
		person, err := s.resolveName(ctx, treeID, name)
		if err != nil {
			return err
		}
		if person == nil {
			result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: fmt.Sprintf("union references unknown person %q", name)})
			result.Skipped++
			return nil
		}
		memberIDs = append(memberIDs, person.ID)
	}
	if _, err := s.persons.CreateUnion(ctx, treeID, memberIDs); err != nil {
		result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: err.Error()})
		result.Skipped++
		return nil
	}
	result.Unions++
	return nil
}

func (s *ImportService) resolveName(ctx context.Context, treeID, name string) (*entities.Person, error) {
	person, err := s.db.FindPersonByName(ctx, treeID, name)
	if err != nil {
		return nil, fmt.Errorf("finding person %q: %w", name, err)
	}
	return person, nil
}
