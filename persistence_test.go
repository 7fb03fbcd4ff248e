package tasknest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestStorage_MalformedSlotsFallBack tests that every slot reads as its
// default when the stored JSON is unusable
func TestStorage_MalformedSlotsFallBack(t *testing.T) {
	medium := NewMemoryMedium()
	for _, key := range []string{KeyTasks, KeyUser, KeyCategories, KeyDarkMode, KeyView} {
		require.NoError(t, medium.Set(key, "{not json"))
	}
	storage := NewStorage(medium, zaptest.NewLogger(t))

	assert.Equal(t, []Task{}, storage.Tasks())
	assert.Nil(t, storage.User())
	assert.Equal(t, []Category{}, storage.Categories())
	assert.False(t, storage.DarkMode())
	assert.Equal(t, ViewDashboard, storage.View())
}

func TestStorage_WrongShapeFallsBack(t *testing.T) {
	medium := NewMemoryMedium()
	require.NoError(t, medium.Set(KeyTasks, `{"id":"T1"}`))
	require.NoError(t, medium.Set(KeyDarkMode, `"yes"`))
	require.NoError(t, medium.Set(KeyView, `"calendar"`))
	storage := NewStorage(medium, nil)

	assert.Equal(t, []Task{}, storage.Tasks())
	assert.False(t, storage.DarkMode())
	assert.Equal(t, ViewDashboard, storage.View())
}

func TestStorage_MediumErrorsFallBack(t *testing.T) {
	storage := NewStorage(brokenMedium{}, zaptest.NewLogger(t))

	assert.Equal(t, []Task{}, storage.Tasks())
	assert.Nil(t, storage.User())
	assert.Equal(t, []Category{}, storage.Categories())
	assert.False(t, storage.DarkMode())
	assert.Equal(t, ViewDashboard, storage.View())

	assert.ErrorIs(t, storage.SetTasks(nil), errMediumDown)
	assert.ErrorIs(t, storage.SetUser(nil), errMediumDown)
}

func TestStorage_NullSlotsReadAsEmpty(t *testing.T) {
	medium := NewMemoryMedium()
	require.NoError(t, medium.Set(KeyTasks, "null"))
	require.NoError(t, medium.Set(KeyCategories, "null"))
	storage := NewStorage(medium, nil)

	assert.Equal(t, []Task{}, storage.Tasks())
	assert.Equal(t, []Category{}, storage.Categories())
}

func TestStorage_WritesJSON(t *testing.T) {
	medium := NewMemoryMedium()
	storage := NewStorage(medium, nil)

	require.NoError(t, storage.SetTasks(nil))
	require.NoError(t, storage.SetDarkMode(true))
	require.NoError(t, storage.SetView(ViewKanban))

	raw, _, _ := medium.Get(KeyTasks)
	assert.Equal(t, "[]", raw)
	raw, _, _ = medium.Get(KeyDarkMode)
	assert.Equal(t, "true", raw)
	raw, _, _ = medium.Get(KeyView)
	assert.Equal(t, `"kanban"`, raw)
}

func TestStorage_TaskJSONFieldNames(t *testing.T) {
	medium := NewMemoryMedium()
	storage := NewStorage(medium, nil)

	created := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, storage.SetTasks([]Task{{
		ID: "T1", Title: "Buy milk", Priority: PriorityLow, Status: StatusTodo,
		Category: "Personal", DueDate: "2026-10-13", CreatedAt: created, UpdatedAt: created, UserID: "u1",
	}}))

	raw, _, _ := medium.Get(KeyTasks)
	assert.JSONEq(t, `[{
		"id": "T1",
		"title": "Buy milk",
		"priority": "low",
		"status": "todo",
		"category": "Personal",
		"dueDate": "2026-10-13",
		"createdAt": "2026-10-14T09:00:00Z",
		"updatedAt": "2026-10-14T09:00:00Z",
		"userId": "u1"
	}]`, raw)
}

func TestStorage_SetUserNilRemovesSlot(t *testing.T) {
	medium := NewMemoryMedium()
	storage := NewStorage(medium, nil)

	require.NoError(t, storage.SetUser(&User{ID: "u1", Name: "ana", Email: "ana@example.com"}))
	_, ok, _ := medium.Get(KeyUser)
	assert.True(t, ok)

	require.NoError(t, storage.SetUser(nil))
	_, ok, _ = medium.Get(KeyUser)
	assert.False(t, ok)
	assert.Nil(t, storage.User())
}

// TestFileMedium_Persistence tests that slots survive a new medium instance
func TestFileMedium_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	m1, err := NewFileMedium(tmpDir)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(tmpDir, ".tasknest"))

	require.NoError(t, m1.Set(KeyView, `"kanban"`))
	require.NoError(t, m1.Set(KeyDarkMode, "true"))
	assert.FileExists(t, m1.Path())

	m2, err := NewFileMedium(tmpDir)
	require.NoError(t, err)

	value, ok, err := m2.Get(KeyView)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"kanban"`, value)

	require.NoError(t, m2.Delete(KeyView))
	require.NoError(t, m2.Delete("never-set"))

	_, ok, err = m1.Get(KeyView)
	require.NoError(t, err)
	assert.False(t, ok)

	value, _, _ = m1.Get(KeyDarkMode)
	assert.Equal(t, "true", value)
}

func TestFileMedium_MissingAndEmptyFile(t *testing.T) {
	medium, err := NewFileMedium(t.TempDir())
	require.NoError(t, err)

	_, ok, err := medium.Get(KeyTasks)
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(medium.Path(), nil, 0644))
	_, ok, err = medium.Get(KeyTasks)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileMedium_CorruptFile(t *testing.T) {
	medium, err := NewFileMedium(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(medium.Path(), []byte("{{{"), 0644))

	_, _, err = medium.Get(KeyTasks)
	assert.Error(t, err)

	// Storage turns the read error into defaults
	storage := NewStorage(medium, zaptest.NewLogger(t))
	assert.Equal(t, []Task{}, storage.Tasks())

	// a write replaces the corrupt file
	require.NoError(t, medium.Set(KeyDarkMode, "true"))
	value, ok, err := medium.Get(KeyDarkMode)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
}

func TestFileMedium_NoTempFilesLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	medium, err := NewFileMedium(tmpDir)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, medium.Set(KeyTasks, "[]"))
	}

	matches, err := filepath.Glob(filepath.Join(tmpDir, ".tasknest", "storage-*.json"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}
