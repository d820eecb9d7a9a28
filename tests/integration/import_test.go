package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/domain/entities"
)

func TestImport_JSONIntoSQLite(t *testing.T) {
	s := newTestStack(t, "en")

	input := `[
		{"record": "person", "name": "Hassan", "sex": "male"},
		{"record": "person", "name": "Ali", "sex": "male"},
		{"record": "person", "name": "Mona", "sex": "female"},
		{"record": "person", "name": "Omar", "sex": "male"},
		{"record": "parent", "parent": "Hassan", "child": "Ali"},
		{"record": "parent", "parent": "Ali", "child": "Omar"},
		{"record": "parent", "parent": "Mona", "child": "Omar"},
		{"record": "union", "members": ["Ali", "Mona"]}
	]`

	result, err := s.imports.HandleImport(context.Background(), testTree, "json", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, result.People)
	assert.Equal(t, 3, result.Edges)
	assert.Equal(t, 1, result.Unions)
	assert.Empty(t, result.Errors)

	// The imported graph answers relationship queries immediately.
	relation, err := s.relate.HandleRelate(context.Background(), testTree, "Omar", "Hassan", 0)
	require.NoError(t, err)
	assert.Equal(t, entities.KindGrandparent, relation.Result.Kind)
	assert.Equal(t, "Grandfather", relation.Result.DisplayLabel)

	relation, err = s.relate.HandleRelate(context.Background(), testTree, "Ali", "Mona", 0)
	require.NoError(t, err)
	assert.Equal(t, entities.KindSpouse, relation.Result.Kind)
}

func TestImport_Reimport(t *testing.T) {
	s := newTestStack(t, "en")

	input := `[
		{"record": "person", "name": "Ali", "sex": "male"},
		{"record": "person", "name": "Omar", "sex": "male"},
		{"record": "parent", "parent": "Ali", "child": "Omar"}
	]`

	first, err := s.imports.HandleImport(context.Background(), testTree, "json", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, first.People)

	// Importing the same file again skips people and reports the duplicate
	// edge instead of doubling the graph.
	second, err := s.imports.HandleImport(context.Background(), testTree, "json", strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, second.People)
	assert.Zero(t, second.Edges)
	assert.Equal(t, 3, second.Skipped, "two person skips plus the duplicate edge")
	require.Len(t, second.Errors, 1)
	assert.Contains(t, second.Errors[0].Message, "already exists")

	count, err := s.repo.CountPersons(context.Background(), testTree)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImport_CSVIntoSQLite(t *testing.T) {
	s := newTestStack(t, "en")

	input := `record,name,sex,deceased,parent,child,type,members
person,Ali,male,,,,,
person,Sara,female,true,,,,
parent,,,,Ali,Sara,biological,
`

	result, err := s.imports.HandleImport(context.Background(), testTree, "csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, result.People)
	assert.Equal(t, 1, result.Edges)

	sara, err := s.repo.FindPersonByName(context.Background(), testTree, "Sara")
	require.NoError(t, err)
	require.NotNil(t, sara)
	assert.True(t, sara.Deceased)
}
