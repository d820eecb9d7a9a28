package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/mocks"
	"github.com/nileroots/kinship-core/internal/domain/services"
)

const testTree = "tree_test"

type testEnv struct {
	db      *mocks.FamilyDB
	persons *PersonHandler
	relate  *RelateHandler
	imports *ImportHandler
	labels  *LabelHandler
}

func newTestEnv() *testEnv {
	db := mocks.NewFamilyDB()
	personSvc := services.NewPersonService(db)
	kinship := services.NewKinshipService(db, services.NewLabelService(db), "en", 0)
	return &testEnv{
		db:      db,
		persons: NewPersonHandler(personSvc, db),
		relate:  NewRelateHandler(kinship, personSvc),
		imports: NewImportHandler(services.NewImportService(db, personSvc)),
		labels:  NewLabelHandler(db),
	}
}

func (e *testEnv) addPerson(t *testing.T, name, sex string) *entities.Person {
	t.Helper()
	person, err := e.persons.HandleAdd(context.Background(), testTree, name, sex, false)
	require.NoError(t, err)
	return person
}

func TestPersonHandler_AddAndList(t *testing.T) {
	env := newTestEnv()
	env.addPerson(t, "Ali", "male")
	env.addPerson(t, "Sara", "female")

	list, err := env.persons.HandleList(context.Background(), testTree, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.People, 2)
	assert.Equal(t, "Ali", list.People[0].Name)

	list, err = env.persons.HandleList(context.Background(), testTree, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total, "total counts the whole tree, not the page")
	assert.Len(t, list.People, 1)
}

func TestPersonHandler_Show(t *testing.T) {
	env := newTestEnv()
	dad := env.addPerson(t, "Dad", "male")
	mom := env.addPerson(t, "Mom", "female")
	kid := env.addPerson(t, "Kid", "")

	_, err := env.persons.HandleLinkParent(context.Background(), testTree, "Dad", "Kid", "")
	require.NoError(t, err)
	_, err = env.persons.HandleLinkParent(context.Background(), testTree, "Mom", "Kid", "")
	require.NoError(t, err)
	_, err = env.persons.HandleCreateUnion(context.Background(), testTree, []string{"Dad", "Mom"})
	require.NoError(t, err)

	detail, err := env.persons.HandleShow(context.Background(), testTree, "kid")
	require.NoError(t, err)
	assert.Equal(t, kid.ID, detail.Person.ID)
	require.Len(t, detail.Parents, 2)
	assert.Empty(t, detail.Children)
	assert.Empty(t, detail.Spouses)

	detail, err = env.persons.HandleShow(context.Background(), testTree, "Dad")
	require.NoError(t, err)
	assert.Equal(t, dad.ID, detail.Person.ID)
	require.Len(t, detail.Children, 1)
	assert.Equal(t, kid.ID, detail.Children[0].ID)
	require.Len(t, detail.Spouses, 1)
	assert.Equal(t, mom.ID, detail.Spouses[0].ID)

	_, err = env.persons.HandleShow(context.Background(), testTree, "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person not found")
}

func TestPersonHandler_Delete(t *testing.T) {
	env := newTestEnv()
	env.addPerson(t, "Ali", "male")

	require.NoError(t, env.persons.HandleDelete(context.Background(), testTree, "ali"))

	err := env.persons.HandleDelete(context.Background(), testTree, "ali")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person not found")
}

func TestPersonHandler_LinkParent_UnknownPerson(t *testing.T) {
	env := newTestEnv()
	env.addPerson(t, "Ali", "male")

	_, err := env.persons.HandleLinkParent(context.Background(), testTree, "Ali", "Ghost", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person not found: Ghost")
}

func TestRelateHandler_HandleRelate(t *testing.T) {
	env := newTestEnv()
	dad := env.addPerson(t, "Dad", "male")
	env.addPerson(t, "Son", "male")
	_, err := env.persons.HandleLinkParent(context.Background(), testTree, "Dad", "Son", "")
	require.NoError(t, err)

	t.Run("by names", func(t *testing.T) {
		result, err := env.relate.HandleRelate(context.Background(), testTree, "son", "dad", 0)
		require.NoError(t, err)
		assert.True(t, result.Result.Found)
		assert.Equal(t, entities.KindParent, result.Result.Kind)
		assert.Equal(t, "Father", result.Result.DisplayLabel)
		require.NotNil(t, result.PersonA)
		assert.Equal(t, "Son", result.PersonA.Name)
		assert.Equal(t, "Dad", result.PersonB.Name)
	})

	t.Run("by id", func(t *testing.T) {
		result, err := env.relate.HandleRelate(context.Background(), testTree, dad.ID, "Son", 0)
		require.NoError(t, err)
		assert.Equal(t, entities.KindChild, result.Result.Kind)
	})

	t.Run("unknown name yields not found result", func(t *testing.T) {
		result, err := env.relate.HandleRelate(context.Background(), testTree, "Dad", "Ghost", 0)
		require.NoError(t, err)
		assert.False(t, result.Result.Found)
		assert.Equal(t, entities.KindPersonNotFound, result.Result.Kind)
		assert.Nil(t, result.PersonB)
	})
}

func TestRelateHandler_ResolvePath(t *testing.T) {
	env := newTestEnv()
	dad := env.addPerson(t, "Dad", "male")
	son := env.addPerson(t, "Son", "male")

	people, err := env.relate.ResolvePath(context.Background(), testTree, []string{son.ID, dad.ID, "ghost"})
	require.NoError(t, err)
	require.Len(t, people, 3)
	assert.Equal(t, "Son", people[0].Name)
	assert.Equal(t, "Dad", people[1].Name)
	assert.Nil(t, people[2], "stale path ids resolve to nil, not an error")
}

func TestImportHandler_HandleImport(t *testing.T) {
	env := newTestEnv()

	t.Run("json", func(t *testing.T) {
		input := `[
			{"record": "person", "name": "Ali", "sex": "male"},
			{"record": "person", "name": "Omar", "sex": "male"},
			{"record": "parent", "parent": "Ali", "child": "Omar"}
		]`
		result, err := env.imports.HandleImport(context.Background(), testTree, "json", strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, 2, result.People)
		assert.Equal(t, 1, result.Edges)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := env.imports.HandleImport(context.Background(), testTree, "xml", strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})

	t.Run("empty file", func(t *testing.T) {
		result, err := env.imports.HandleImport(context.Background(), testTree, "json", strings.NewReader("[]"))
		require.NoError(t, err)
		assert.Zero(t, result.People)
	})
}

func TestLabelHandler(t *testing.T) {
	env := newTestEnv()

	t.Run("set and list", func(t *testing.T) {
		err := env.labels.HandleSet(context.Background(), "parent", "male", "en", "Dad")
		require.NoError(t, err)

		labels, err := env.labels.HandleList(context.Background(), "en")
		require.NoError(t, err)

		var found bool
		for _, l := range labels {
			if l.LabelKey == "relationship.father" {
				found = true
				assert.Equal(t, "Dad", l.Display)
			}
		}
		assert.True(t, found)
	})

	t.Run("validation", func(t *testing.T) {
		err := env.labels.HandleSet(context.Background(), "parent", "male", "en", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "display label is required")

		err = env.labels.HandleSet(context.Background(), "parent", "male", "", "Dad")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "locale is required")
	})
}
