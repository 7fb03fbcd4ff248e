package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fmizzell/tasknest"
)

var now = time.Date(2026, 10, 14, 15, 0, 0, 0, time.Local)

func sampleState() tasknest.AppState {
	state := tasknest.InitialState()
	state.User = &tasknest.User{ID: "u1", Name: "ana", Email: "ana@example.com"}
	state.Tasks = []tasknest.Task{
		{ID: "T1", Title: "Pay rent", Priority: tasknest.PriorityHigh, Status: tasknest.StatusTodo, Category: "Work", DueDate: "2026-10-10", UpdatedAt: now.Add(-time.Hour)},
		{ID: "T2", Title: "Read book", Priority: tasknest.PriorityLow, Status: tasknest.StatusCompleted, Category: "Studies", UpdatedAt: now},
		{ID: "T3", Title: "Dentist", Priority: tasknest.PriorityMedium, Status: tasknest.StatusTodo, Category: "Health", DueDate: "2026-10-20", UpdatedAt: now.Add(-2 * time.Hour)},
	}
	return state
}

func TestDashboard(t *testing.T) {
	out := Dashboard(sampleState(), now)

	for _, want := range []string{"Total tasks", "Completed", "In progress", "Overdue", "Recent tasks", "Upcoming deadlines", "Pay rent", "Dentist", "Oct 20, 2026"} {
		assert.Contains(t, out, want)
	}
	// completed tasks are not recent
	assert.NotContains(t, out, "Read book")
}

func TestDashboard_Empty(t *testing.T) {
	out := Dashboard(tasknest.InitialState(), now)

	assert.Contains(t, out, "No active tasks")
	assert.Contains(t, out, "No upcoming deadlines")
}

func TestKanban(t *testing.T) {
	out := Kanban(sampleState(), now)

	assert.Contains(t, out, "Kanban board")
	assert.Contains(t, out, "To do (2)")
	assert.Contains(t, out, "In progress (0)")
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "No tasks in progress")
	assert.NotContains(t, out, "No new tasks")
	assert.Contains(t, out, "Read book")
}

func TestTaskCard_DanglingCategory(t *testing.T) {
	task := tasknest.Task{ID: "T9", Title: "Water plants", Priority: tasknest.PriorityLow, Status: tasknest.StatusTodo, Category: "Garden"}

	out := TaskCard(task, tasknest.DefaultCategories(), now, Light)
	assert.Contains(t, out, "Water plants")
	assert.Contains(t, out, "Low")
	assert.NotContains(t, out, "Garden")

	task.Category = "Personal"
	out = TaskCard(task, tasknest.DefaultCategories(), now, Light)
	assert.Contains(t, out, "Personal")
}

func TestTaskCard_Completed(t *testing.T) {
	task := tasknest.Task{ID: "T2", Title: "Done", Status: tasknest.StatusCompleted, Priority: tasknest.PriorityMedium}

	out := TaskCard(task, nil, now, Dark)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "#T2")
}

func TestSidebar(t *testing.T) {
	state := sampleState()
	state.CurrentView = tasknest.ViewKanban
	state.DarkMode = true

	out := Sidebar(state)
	assert.Contains(t, out, "TaskNest")
	assert.Contains(t, out, "▸ Kanban")
	assert.Contains(t, out, "Dark mode: on")
	assert.Contains(t, out, "Work (1)")
	// the only Studies task is completed
	assert.NotContains(t, out, "Studies (")
}

func TestHeaderAndPage(t *testing.T) {
	assert.Contains(t, Header(tasknest.InitialState()), "Not signed in")

	state := sampleState()
	assert.Contains(t, Header(state), "ana@example.com")

	state.CurrentView = tasknest.ViewKanban
	assert.Contains(t, Page(state, now), "Kanban board")
	state.CurrentView = tasknest.ViewDashboard
	assert.Contains(t, Page(state, now), "Upcoming deadlines")
}

func TestIconGlyph(t *testing.T) {
	for _, icon := range tasknest.Icons {
		assert.NotEmpty(t, IconGlyph(icon))
	}
	assert.Equal(t, IconGlyph(tasknest.FallbackIcon), IconGlyph(tasknest.Icon("Rocket")))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Oct 14, 2026", FormatDate("2026-10-14"))
	assert.Equal(t, "someday", FormatDate("someday"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "High", PriorityLabel(tasknest.PriorityHigh))
	assert.Equal(t, "In progress", StatusLabel(tasknest.StatusInProgress))
	assert.Equal(t, Dark, ThemeFor(true))
	assert.Equal(t, Light, ThemeFor(false))
	assert.Equal(t, "archived", StatusLabel("archived"))
}

func TestDashboard_DueTodayMarker(t *testing.T) {
	state := tasknest.InitialState()
	state.Tasks = []tasknest.Task{
		{ID: "T1", Title: "Call bank", Status: tasknest.StatusTodo, Priority: tasknest.PriorityHigh, DueDate: "2026-10-14"},
	}

	out := Dashboard(state, now)
	assert.Contains(t, out, "📅 Today")
}
