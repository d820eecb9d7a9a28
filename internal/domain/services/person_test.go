package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/domain/entities"
	"github.com/nileroots/kinship-core/internal/domain/mocks"
)

func TestPersonService_Add(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	person, err := svc.Add(context.Background(), testTree, "Ali Hassan", entities.SexMale, false)
	require.NoError(t, err)
	assert.NotEmpty(t, person.ID)
	assert.Equal(t, testTree, person.TreeID)
	assert.Equal(t, "Ali Hassan", person.Name)
	assert.Equal(t, "ali hassan", person.NormalizedName)
	assert.Equal(t, entities.SexMale, person.Sex)
	assert.False(t, person.CreatedAt.IsZero())

	require.Len(t, db.Audit, 1)
	assert.Equal(t, "person.add", db.Audit[0].Action)
	assert.Equal(t, person.ID, db.Audit[0].PersonID)
}

func TestPersonService_Add_AuditWriteFailureSurfaces(t *testing.T) {
	db := mocks.NewFamilyDB()
	db.AuditErr = errors.New("disk full")
	svc := NewPersonService(db)

	_, err := svc.Add(context.Background(), testTree, "Ali", entities.SexMale, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recording audit entry person.add")
	assert.ErrorIs(t, err, db.AuditErr)

	// The person itself was saved before the audit write failed.
	assert.Len(t, db.Persons, 1)
}

func TestPersonService_Add_RequiresName(t *testing.T) {
	svc := NewPersonService(mocks.NewFamilyDB())

	_, err := svc.Add(context.Background(), testTree, "", entities.SexUnknown, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestPersonService_Get_ScopedToTree(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	person, err := svc.Add(context.Background(), testTree, "Ali", entities.SexMale, false)
	require.NoError(t, err)

	found, err := svc.Get(context.Background(), testTree, person.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, person.ID, found.ID)

	// Same id queried against another tree is invisible.
	found, err = svc.Get(context.Background(), "tree_other", person.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPersonService_Resolve(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	person, err := svc.Add(context.Background(), testTree, "Sara", entities.SexFemale, false)
	require.NoError(t, err)

	t.Run("by name case insensitive", func(t *testing.T) {
		found, err := svc.Resolve(context.Background(), testTree, "  SARA ")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, person.ID, found.ID)
	})

	t.Run("by id", func(t *testing.T) {
		found, err := svc.Resolve(context.Background(), testTree, person.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Sara", found.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		found, err := svc.Resolve(context.Background(), testTree, "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPersonService_Delete(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	parent, err := svc.Add(context.Background(), testTree, "Parent", entities.SexUnknown, false)
	require.NoError(t, err)
	child, err := svc.Add(context.Background(), testTree, "Child", entities.SexUnknown, false)
	require.NoError(t, err)
	_, err = svc.LinkParent(context.Background(), testTree, parent.ID, child.ID, entities.EdgeBiological)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), testTree, parent.ID))
	assert.NotContains(t, db.Persons, parent.ID)
	assert.Empty(t, db.Edges, "edges referring to the person must go with it")

	err = svc.Delete(context.Background(), testTree, parent.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "person not found")
}

func TestPersonService_LinkParent(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	parent, err := svc.Add(context.Background(), testTree, "Parent", entities.SexUnknown, false)
	require.NoError(t, err)
	child, err := svc.Add(context.Background(), testTree, "Child", entities.SexUnknown, false)
	require.NoError(t, err)

	t.Run("creates edge with default type", func(t *testing.T) {
		edge, err := svc.LinkParent(context.Background(), testTree, parent.ID, child.ID, "")
		require.NoError(t, err)
		assert.Equal(t, entities.EdgeBiological, edge.Type)
		assert.Equal(t, parent.ID, edge.ParentID)
		assert.Equal(t, child.ID, edge.ChildID)
	})

	t.Run("rejects duplicate of same type", func(t *testing.T) {
		_, err := svc.LinkParent(context.Background(), testTree, parent.ID, child.ID, entities.EdgeBiological)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "edge already exists")
	})

	t.Run("allows second edge of different type", func(t *testing.T) {
		edge, err := svc.LinkParent(context.Background(), testTree, parent.ID, child.ID, entities.EdgeAdoptive)
		require.NoError(t, err)
		assert.Equal(t, entities.EdgeAdoptive, edge.Type)
	})

	t.Run("rejects self parenting", func(t *testing.T) {
		_, err := svc.LinkParent(context.Background(), testTree, parent.ID, parent.ID, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "own parent")
	})

	t.Run("rejects unknown people", func(t *testing.T) {
		_, err := svc.LinkParent(context.Background(), testTree, parent.ID, "ghost", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "person not found")
	})
}

func TestPersonService_CreateUnion(t *testing.T) {
	db := mocks.NewFamilyDB()
	svc := NewPersonService(db)

	a, err := svc.Add(context.Background(), testTree, "A", entities.SexUnknown, false)
	require.NoError(t, err)
	b, err := svc.Add(context.Background(), testTree, "B", entities.SexUnknown, false)
	require.NoError(t, err)
	c, err := svc.Add(context.Background(), testTree, "C", entities.SexUnknown, false)
	require.NoError(t, err)

	t.Run("two members", func(t *testing.T) {
		union, err := svc.CreateUnion(context.Background(), testTree, []string{a.ID, b.ID})
		require.NoError(t, err)
		assert.Equal(t, []string{a.ID, b.ID}, union.MemberIDs)
	})

	t.Run("polygamous union", func(t *testing.T) {
		union, err := svc.CreateUnion(context.Background(), testTree, []string{a.ID, b.ID, c.ID})
		require.NoError(t, err)
		assert.Len(t, union.MemberIDs, 3)
	})

	t.Run("needs two members", func(t *testing.T) {
		_, err := svc.CreateUnion(context.Background(), testTree, []string{a.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least two members")
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := svc.CreateUnion(context.Background(), testTree, []string{a.ID, a.ID})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate union member")
	})

	t.Run("rejects unknown member", func(t *testing.T) {
		_, err := svc.CreateUnion(context.Background(), testTree, []string{a.ID, "ghost"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "person not found")
	})
}
