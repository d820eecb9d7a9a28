package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nileroots/kinship-core/internal/infrastructure/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestRunTreesCreate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, runTreesCreate(nil, "Nile Family", "Maternal side"))

	// First create writes the default config file.
	assert.True(t, config.Exists(dir))

	trees, err := config.LoadTrees(dir)
	require.NoError(t, err)
	require.True(t, trees.Exists("Nile Family"))

	id, err := trees.GetID("Nile Family")
	require.NoError(t, err)
	assert.Equal(t, "tree_nile_family", id)

	entry, err := trees.Get("Nile Family")
	require.NoError(t, err)
	assert.Equal(t, "Maternal side", entry.Description)
}

func TestRunTreesCreate_DuplicateRejected(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, runTreesCreate(nil, "nile", ""))

	err := runTreesCreate(nil, "nile", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRunTreesDelete(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, runTreesCreate(nil, "nile", ""))

	// Simulate tree data on disk.
	treeDir := config.TreeDir(dir, "nile")
	require.NoError(t, os.MkdirAll(treeDir, 0755))
	require.NoError(t, os.WriteFile(treeDir+"/kinship.db", []byte("x"), 0600))

	require.NoError(t, runTreesDelete(nil, "nile", false))

	trees, err := config.LoadTrees(dir)
	require.NoError(t, err)
	assert.False(t, trees.Exists("nile"))

	_, err = os.Stat(treeDir)
	assert.True(t, os.IsNotExist(err), "tree data removed")
}

func TestRunTreesDelete_KeepData(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, runTreesCreate(nil, "nile", ""))

	treeDir := config.TreeDir(dir, "nile")
	require.NoError(t, os.MkdirAll(treeDir, 0755))

	require.NoError(t, runTreesDelete(nil, "nile", true))

	_, err := os.Stat(treeDir)
	assert.NoError(t, err, "data kept on disk")
}

func TestRunTreesDelete_UnknownTree(t *testing.T) {
	chdir(t, t.TempDir())

	err := runTreesDelete(nil, "ghost", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
