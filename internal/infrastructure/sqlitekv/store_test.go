package sqlitekv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetDelete(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "data", "tasknest.sqlite"))
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.Get("tasknest_tasks")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("tasknest_tasks", "[]"))
	require.NoError(t, store.Set("tasknest_tasks", `[{"id":"T1"}]`))

	value, ok, err := store.Get("tasknest_tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"T1"}]`, value)

	var count int64
	require.NoError(t, store.db.Model(&Slot{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, store.Delete("tasknest_tasks"))
	require.NoError(t, store.Delete("tasknest_tasks"))
	_, ok, err = store.Get("tasknest_tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasknest.sqlite")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("tasknest_view", `"kanban"`))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	value, ok, err := second.Get("tasknest_view")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"kanban"`, value)
}

func TestEnsureDirForSQLite(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ensureDirForSQLite("file:"+filepath.Join(dir, "a", "b.sqlite")+"?cache=shared"))
	assert.DirExists(t, filepath.Join(dir, "a"))

	assert.NoError(t, ensureDirForSQLite(":memory:"))
	assert.NoError(t, ensureDirForSQLite("plain.sqlite"))
}
