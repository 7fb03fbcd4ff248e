package tasknest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	for input, want := range map[string]Priority{"high": PriorityHigh, " Medium ": PriorityMedium, "LOW": PriorityLow} {
		got, err := ParsePriority(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParsePriority("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseStatus(t *testing.T) {
	for input, want := range map[string]Status{
		"todo":        StatusTodo,
		"pending":     StatusTodo,
		"In-Progress": StatusInProgress,
		"completed":   StatusCompleted,
	} {
		got, err := ParseStatus(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStatus("done")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParseView(t *testing.T) {
	view, err := ParseView("Kanban")
	require.NoError(t, err)
	assert.Equal(t, ViewKanban, view)

	_, err = ParseView("calendar")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.Len(t, categories, 5)

	ids := make(map[string]bool)
	for _, c := range categories {
		assert.False(t, ids[c.ID])
		ids[c.ID] = true
		assert.Equal(t, c.Icon, string(c.IconOf()), "default category %s uses an unknown icon", c.Name)
	}

	// a fresh slice every call
	categories[0].Name = "Changed"
	assert.Equal(t, "Work", DefaultCategories()[0].Name)
}

func TestFindCategory(t *testing.T) {
	category, ok := FindCategory(DefaultCategories(), "Health")
	require.True(t, ok)
	assert.Equal(t, "3", category.ID)

	_, ok = FindCategory(DefaultCategories(), "health")
	assert.False(t, ok)
}

func TestParseIcon(t *testing.T) {
	for _, icon := range Icons {
		assert.Equal(t, icon, ParseIcon(string(icon)))
	}
	assert.Equal(t, FallbackIcon, ParseIcon("Rocket"))
	assert.Equal(t, FallbackIcon, ParseIcon(""))
	assert.Equal(t, IconHeart, Category{Icon: "Heart"}.IconOf())
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.False(t, strings.Contains(id, "-"))
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
