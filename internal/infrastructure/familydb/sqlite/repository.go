// Package sqlite provides a SQLite implementation of the FamilyDB interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/ports"
	"github.com/nileroots/kinship-core/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.FamilyDB using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist and seeds the
// default relationship vocabulary when the labels table is empty.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- People (nodes in the family graph)
	CREATE TABLE IF NOT EXISTS persons (
		id TEXT PRIMARY KEY,
		tree_id TEXT NOT NULL,
		name TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		sex TEXT NOT NULL DEFAULT 'unknown',
		deceased INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_persons_tree ON persons(tree_id);
	CREATE INDEX IF NOT EXISTS idx_persons_normalized ON persons(tree_id, normalized_name);

	-- Directed parent -> child edges; multiple types per pair may exist
	CREATE TABLE IF NOT EXISTS parent_child (
		id TEXT PRIMARY KEY,
		tree_id TEXT NOT NULL,
		parent_id TEXT NOT NULL,
		child_id TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'biological',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_parent_child_child ON parent_child(tree_id, child_id);
	CREATE INDEX IF NOT EXISTS idx_parent_child_parent ON parent_child(tree_id, parent_id);

	-- Unions (>= 2 partners; polygamous unions supported)
	CREATE TABLE IF NOT EXISTS unions (
		id TEXT PRIMARY KEY,
		tree_id TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS union_members (
		union_id TEXT NOT NULL REFERENCES unions(id) ON DELETE CASCADE,
		person_id TEXT NOT NULL,
		PRIMARY KEY (union_id, person_id)
	);
	CREATE INDEX IF NOT EXISTS idx_union_members_person ON union_members(person_id);

	-- Relationship label vocabulary (multi-script side table)
	CREATE TABLE IF NOT EXISTS relationship_labels (
		kind TEXT NOT NULL,
		sex TEXT NOT NULL,
		locale TEXT NOT NULL,
		label_key TEXT NOT NULL,
		display TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (kind, sex, locale)
	);

	-- Audit log (tracks mutations; queries are never logged)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		person_id TEXT,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_person ON audit_log(person_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return r.seedVocabulary(ctx)
}

// seedVocabulary inserts the default label set if the table is empty.
func (r *Repository) seedVocabulary(ctx context.Context) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM relationship_labels`).Scan(&count); err != nil {
		return fmt.Errorf("counting labels: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, entry := range entities.DefaultVocabulary {
		e := entry
		if err := r.SaveLabel(ctx, &e); err != nil {
			return fmt.Errorf("seeding label %s/%s/%s: %w", e.Kind, e.Sex, e.Locale, err)
		}
	}
	return nil
}

// SavePerson saves or updates a person.
func (r *Repository) SavePerson(ctx context.Context, person *entities.Person) error {
	query := `
		INSERT INTO persons (id, tree_id, name, normalized_name, sex, deceased, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			sex = excluded.sex,
			deceased = excluded.deceased
	`
	_, err := r.db.ExecContext(ctx, query,
		person.ID,
		person.TreeID,
		person.Name,
		person.NormalizedName,
		string(person.Sex),
		person.Deceased,
		person.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving person: %w", err)
	}
	return nil
}

// FindPersonByName finds a person by its normalized name within a tree.
func (r *Repository) FindPersonByName(ctx context.Context, treeID, name string) (*entities.Person, error) {
	query := `
		SELECT id, tree_id, name, normalized_name, sex, deceased, created_at
		FROM persons
		WHERE tree_id = ? AND normalized_name = ?
	`
	row := r.db.QueryRowContext(ctx, query, treeID, entities.NormalizeName(name))
	return scanPersonRow(row)
}

// FindPersonByID finds a person by id regardless of tree.
func (r *Repository) FindPersonByID(ctx context.Context, personID string) (*entities.Person, error) {
	query := `
		SELECT id, tree_id, name, normalized_name, sex, deceased, created_at
		FROM persons
		WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, personID)
	return scanPersonRow(row)
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*entities.Person, error) {
	var person entities.Person
	var sex string
	err := row.Scan(
		&person.ID,
		&person.TreeID,
		&person.Name,
		&person.NormalizedName,
		&sex,
		&person.Deceased,
		&person.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	person.Sex = entities.Sex(sex)
	return &person, nil
}

func scanPersonRow(row *sql.Row) (*entities.Person, error) {
	person, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning person: %w", err)
	}
	return person, nil
}

// ListPersons lists all persons in a tree with pagination.
func (r *Repository) ListPersons(ctx context.Context, treeID string, limit, offset int) ([]*entities.Person, error) {
	query := `
		SELECT id, tree_id, name, normalized_name, sex, deceased, created_at
		FROM persons
		WHERE tree_id = ?
		ORDER BY name ASC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, treeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	result := make([]*entities.Person, 0, limit)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		result = append(result, person)
	}
	return result, rows.Err()
}

// DeletePerson deletes a person and all edges and union memberships
// referring to it.
func (r *Repository) DeletePerson(ctx context.Context, personID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM persons WHERE id = ?`, personID)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("person not found: %s", personID)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM parent_child WHERE parent_id = ? OR child_id = ?`, personID, personID); err != nil {
		return fmt.Errorf("deleting edges: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM union_members WHERE person_id = ?`, personID); err != nil {
		return fmt.Errorf("deleting union memberships: %w", err)
	}
	return tx.Commit()
}

// CountPersons returns the number of persons in a tree.
func (r *Repository) CountPersons(ctx context.Context, treeID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons WHERE tree_id = ?`, treeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting persons: %w", err)
	}
	return count, nil
}

// SaveParentChildEdge saves a directed parent -> child edge.
func (r *Repository) SaveParentChildEdge(ctx context.Context, edge *entities.ParentChildEdge) error {
	query := `
		INSERT INTO parent_child (id, tree_id, parent_id, child_id, type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			parent_id = excluded.parent_id,
			child_id = excluded.child_id,
			type = excluded.type
	`
	_, err := r.db.ExecContext(ctx, query,
		edge.ID,
		edge.TreeID,
		edge.ParentID,
		edge.ChildID,
		string(edge.Type),
		edge.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving edge: %w", err)
	}
	return nil
}

// DeleteParentChildEdge deletes an edge by id.
func (r *Repository) DeleteParentChildEdge(ctx context.Context, edgeID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM parent_child WHERE id = ?`, edgeID)
	if err != nil {
		return fmt.Errorf("deleting edge: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("edge not found: %s", edgeID)
	}
	return nil
}

// ListParentChildEdges lists all edges in a tree.
func (r *Repository) ListParentChildEdges(ctx context.Context, treeID string) ([]entities.ParentChildEdge, error) {
	query := `
		SELECT id, tree_id, parent_id, child_id, type, created_at
		FROM parent_child
		WHERE tree_id = ?
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, treeID)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	edges := make([]entities.ParentChildEdge, 0, 16)
	for rows.Next() {
		var edge entities.ParentChildEdge
		var edgeType string
		if err := rows.Scan(
			&edge.ID,
			&edge.TreeID,
			&edge.ParentID,
			&edge.ChildID,
			&edgeType,
			&edge.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		edge.Type = entities.EdgeType(edgeType)
		edges = append(edges, edge)
	}
	return edges, rows.Err()
}

// SaveUnion saves a union and its membership set.
func (r *Repository) SaveUnion(ctx context.Context, union *entities.Union) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO unions (id, tree_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, query, union.ID, union.TreeID, union.CreatedAt); err != nil {
		return fmt.Errorf("saving union: %w", err)
	}
	for _, memberID := range union.MemberIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO union_members (union_id, person_id) VALUES (?, ?)`,
			union.ID, memberID,
		); err != nil {
			return fmt.Errorf("saving union member: %w", err)
		}
	}
	return tx.Commit()
}

// AddUnionMember adds a person to an existing union.
func (r *Repository) AddUnionMember(ctx context.Context, unionID, personID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO union_members (union_id, person_id) VALUES (?, ?)`,
		unionID, personID,
	)
	if err != nil {
		return fmt.Errorf("adding union member: %w", err)
	}
	return nil
}

// FindUnionByID finds a union with its members.
func (r *Repository) FindUnionByID(ctx context.Context, unionID string) (*entities.Union, error) {
	var union entities.Union
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tree_id, created_at FROM unions WHERE id = ?`, unionID,
	).Scan(&union.ID, &union.TreeID, &union.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning union: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT person_id FROM union_members WHERE union_id = ? ORDER BY person_id ASC`, unionID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying union members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning union member: %w", err)
		}
		union.MemberIDs = append(union.MemberIDs, id)
	}
	return &union, rows.Err()
}

// ListUnions lists all unions in a tree.
func (r *Repository) ListUnions(ctx context.Context, treeID string) ([]entities.Union, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM unions WHERE tree_id = ? ORDER BY created_at ASC, id ASC`, treeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying unions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning union id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	unions := make([]entities.Union, 0, len(ids))
	for _, id := range ids {
		union, err := r.FindUnionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if union != nil {
			unions = append(unions, *union)
		}
	}
	return unions, nil
}

// DeleteUnion deletes a union; memberships cascade.
func (r *Repository) DeleteUnion(ctx context.Context, unionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM unions WHERE id = ?`, unionID)
	if err != nil {
		return fmt.Errorf("deleting union: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("union not found: %s", unionID)
	}
	return nil
}

// Graph provider. All edge queries order results so traversal is stable.

// FindPerson resolves a person id regardless of tree.
func (r *Repository) FindPerson(ctx context.Context, personID string) (*ports.PersonRef, error) {
	var ref ports.PersonRef
	var sex string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, tree_id, sex FROM persons WHERE id = ?`, personID,
	).Scan(&ref.ID, &ref.TreeID, &sex)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning person ref: %w", err)
	}
	ref.Sex = entities.Sex(sex)
	return &ref, nil
}

// GetParents returns the ids of all recorded parents of the person.
func (r *Repository) GetParents(ctx context.Context, treeID, personID string) ([]string, error) {
	query := `
		SELECT DISTINCT parent_id
		FROM parent_child
		WHERE tree_id = ? AND child_id = ?
		ORDER BY parent_id ASC
	`
	return r.queryIDs(ctx, query, treeID, personID)
}

// GetChildren returns the ids of all recorded children of the person.
func (r *Repository) GetChildren(ctx context.Context, treeID, personID string) ([]string, error) {
	query := `
		SELECT DISTINCT child_id
		FROM parent_child
		WHERE tree_id = ? AND parent_id = ?
		ORDER BY child_id ASC
	`
	return r.queryIDs(ctx, query, treeID, personID)
}

// GetSpouses returns everyone sharing a union with the person, excluding the
// person itself.
func (r *Repository) GetSpouses(ctx context.Context, treeID, personID string) ([]string, error) {
	query := `
		SELECT DISTINCT um.person_id
		FROM union_members um
		JOIN unions u ON u.id = um.union_id
		WHERE u.tree_id = ?
		  AND um.person_id != ?
		  AND um.union_id IN (SELECT union_id FROM union_members WHERE person_id = ?)
		ORDER BY um.person_id ASC
	`
	return r.queryIDs(ctx, query, treeID, personID, personID)
}

// queryIDs is a helper to execute queries returning a single id column.
func (r *Repository) queryIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 4)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Vocabulary.

// Lookup returns the display label for a (kind, sex, locale) triple, or ""
// when no row exists.
func (r *Repository) Lookup(ctx context.Context, kind entities.Kind, sex entities.Sex, locale string) (string, error) {
	var display string
	err := r.db.QueryRowContext(ctx,
		`SELECT display FROM relationship_labels WHERE kind = ? AND sex = ? AND locale = ?`,
		string(kind), string(sex), locale,
	).Scan(&display)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("looking up label: %w", err)
	}
	return display, nil
}

// ListLabels returns all vocabulary rows for a locale; empty locale means
// every locale.
func (r *Repository) ListLabels(ctx context.Context, locale string) ([]entities.LabelEntry, error) {
	query := `
		SELECT kind, sex, locale, label_key, display, created_at
		FROM relationship_labels
		WHERE (? = '' OR locale = ?)
		ORDER BY label_key ASC, locale ASC
	`
	rows, err := r.db.QueryContext(ctx, query, locale, locale)
	if err != nil {
		return nil, fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	labels := make([]entities.LabelEntry, 0, 32)
	for rows.Next() {
		var entry entities.LabelEntry
		var kind, sex string
		if err := rows.Scan(&kind, &sex, &entry.Locale, &entry.LabelKey, &entry.Display, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}
		entry.Kind = entities.Kind(kind)
		entry.Sex = entities.Sex(sex)
		labels = append(labels, entry)
	}
	return labels, rows.Err()
}

// SaveLabel inserts or overwrites one vocabulary row.
func (r *Repository) SaveLabel(ctx context.Context, entry *entities.LabelEntry) error {
	labelKey := entry.LabelKey
	if labelKey == "" {
		labelKey = entities.LabelKeyFor(entry.Kind, entry.Sex)
	}
	query := `
		INSERT INTO relationship_labels (kind, sex, locale, label_key, display, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(kind, sex, locale) DO UPDATE SET
			label_key = excluded.label_key,
			display = excluded.display
	`
	_, err := r.db.ExecContext(ctx, query,
		string(entry.Kind),
		string(entry.Sex),
		entry.Locale,
		labelKey,
		entry.Display,
		timeNow(),
	)
	if err != nil {
		return fmt.Errorf("saving label: %w", err)
	}
	return nil
}

// Audit log.

// LogAction logs a mutation to the audit log.
func (r *Repository) LogAction(ctx context.Context, action string, personID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var personIDPtr sql.NullString
	if personID != "" {
		personIDPtr = sql.NullString{String: personID, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (action, person_id, details) VALUES (?, ?, ?)`,
		action, personIDPtr, detailsJSON,
	)
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for a specific person.
func (r *Repository) FindAuditLog(ctx context.Context, personID string) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, person_id, details, created_at
		FROM audit_log
		WHERE person_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []entities.AuditEntry
	for rows.Next() {
		var entry entities.AuditEntry
		var pid, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&pid,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.PersonID = pid.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
