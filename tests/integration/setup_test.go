package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/application/handlers"
	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/services"
	"github.com/nileroots/kinship-core/internal/infrastructure/config"
	"github.com/nileroots/kinship-core/internal/infrastructure/familydb/sqlite"
)

const testTree = "tree_integration"

// testStack is the full wiring the CLI builds, backed by a throwaway
// SQLite file.
type testStack struct {
	repo    *sqlite.Repository
	persons *services.PersonService
	kinship *services.KinshipService
	relate  *handlers.RelateHandler
	imports *handlers.ImportHandler
}

func newTestStack(t *testing.T, locale string) *testStack {
	t.Helper()

	repo, err := sqlite.NewRepository(config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "kinship.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.EnsureSchema(context.Background()))

	persons := services.NewPersonService(repo)
	kinship := services.NewKinshipService(repo, services.NewLabelService(repo), locale, 0)
	return &testStack{
		repo:    repo,
		persons: persons,
		kinship: kinship,
		relate:  handlers.NewRelateHandler(kinship, persons),
		imports: handlers.NewImportHandler(services.NewImportService(repo, persons)),
	}
}

func (s *testStack) addPerson(t *testing.T, name string, sex entities.Sex) *entities.Person {
	t.Helper()
	person, err := s.persons.Add(context.Background(), testTree, name, sex, false)
	require.NoError(t, err)
	return person
}

func (s *testStack) linkParent(t *testing.T, parent, child *entities.Person) {
	t.Helper()
	_, err := s.persons.LinkParent(context.Background(), testTree, parent.ID, child.ID, entities.EdgeBiological)
	require.NoError(t, err)
}

func (s *testStack) createUnion(t *testing.T, members ...*entities.Person) {
	t.Helper()
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	_, err := s.persons.CreateUnion(context.Background(), testTree, ids)
	require.NoError(t, err)
}
