package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fmizzell/tasknest"
)

const (
	recentLimit   = 6
	upcomingLimit = 5
	statWidth     = 18
	sidebarWidth  = 26
)

// Dashboard renders the stat cards, recent tasks and upcoming deadlines
func Dashboard(state tasknest.AppState, now time.Time) string {
	theme := ThemeFor(state.DarkMode)
	stats := tasknest.ComputeStats(state.Tasks, now)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard(theme, "Total tasks", stats.Total, theme.Accent),
		statCard(theme, "Completed", stats.Completed, theme.Success),
		statCard(theme, "In progress", stats.InProgress, lipgloss.Color("#CA8A04")),
		statCard(theme, "Overdue", stats.Overdue, theme.Danger),
	)

	var recent []string
	for _, task := range tasknest.RecentTasks(state.Tasks, recentLimit) {
		recent = append(recent, TaskCard(task, state.Categories, now, theme))
	}
	if len(recent) == 0 {
		recent = append(recent, theme.muted().Render("No active tasks\nAdd a new task to get started"))
	}

	var upcoming []string
	for _, task := range tasknest.UpcomingTasks(state.Tasks, upcomingLimit) {
		upcoming = append(upcoming, deadlineRow(task, now, theme))
	}
	if len(upcoming) == 0 {
		upcoming = append(upcoming, theme.muted().Render("No upcoming deadlines"))
	}

	recentPanel := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{theme.heading().Render("Recent tasks")}, recent...)...)
	upcomingPanel := theme.panel(CardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		append([]string{theme.heading().Render("Upcoming deadlines")}, upcoming...)...))

	body := lipgloss.JoinHorizontal(lipgloss.Top, recentPanel, "  ", upcomingPanel)
	return lipgloss.JoinVertical(lipgloss.Left, cards, "", body)
}

func statCard(theme Theme, title string, value int, color lipgloss.Color) string {
	label := theme.muted().Render(title)
	number := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", value))
	return theme.panel(statWidth).Render(label + "\n" + number)
}

// deadlineRow is one entry of the upcoming deadlines panel
func deadlineRow(task tasknest.Task, now time.Time, theme Theme) string {
	when := FormatDate(task.DueDate)
	switch {
	case tasknest.IsDueToday(task, now):
		when = "Today"
	case tasknest.IsOverdue(task, now):
		when = "Overdue"
	}
	priority := lipgloss.NewStyle().Foreground(theme.priorityColor(task.Priority)).Render("⚑ " + PriorityLabel(task.Priority))
	return fmt.Sprintf("%s  %s\n%s", theme.text().Render(task.Title), priority,
		dueStyle(task, now, theme).Render("📅 "+when))
}

// columnPlaceholders is shown in an empty kanban column
var columnPlaceholders = map[tasknest.Status]string{
	tasknest.StatusTodo:       "No new tasks",
	tasknest.StatusInProgress: "No tasks in progress",
	tasknest.StatusCompleted:  "No completed tasks",
}

// Kanban renders one column per status
func Kanban(state tasknest.AppState, now time.Time) string {
	theme := ThemeFor(state.DarkMode)

	columns := make([]string, 0, len(tasknest.Statuses))
	for _, status := range tasknest.Statuses {
		tasks := tasknest.TasksByStatus(state.Tasks, status)

		title := lipgloss.NewStyle().Foreground(theme.statusColor(status)).Bold(true).
			Render(fmt.Sprintf("%s (%d)", StatusLabel(status), len(tasks)))
		parts := []string{title}
		for _, task := range tasks {
			parts = append(parts, TaskCard(task, state.Categories, now, theme))
		}
		if len(tasks) == 0 {
			parts = append(parts, theme.muted().Render(columnPlaceholders[status]))
		}
		columns = append(columns, lipgloss.NewStyle().MarginRight(1).
			Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
	}

	heading := theme.heading().Render("Kanban board")
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

// Sidebar renders navigation and the category list with open task counts
func Sidebar(state tasknest.AppState) string {
	theme := ThemeFor(state.DarkMode)

	var b strings.Builder
	b.WriteString(theme.heading().Render("TaskNest") + "\n")
	b.WriteString(theme.muted().Render("Task management") + "\n\n")

	for _, view := range []tasknest.View{tasknest.ViewDashboard, tasknest.ViewKanban} {
		label := viewLabel(view)
		if view == state.CurrentView {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("▸ "+label) + "\n")
			continue
		}
		b.WriteString(theme.text().Render("  "+label) + "\n")
	}

	b.WriteString("\n" + theme.muted().Render("CATEGORIES") + "\n")
	for _, category := range state.Categories {
		color := lipgloss.NewStyle().Foreground(lipgloss.Color(category.Color))
		line := color.Render("● "+IconGlyph(category.IconOf())) + " " + theme.text().Render(category.Name)
		if count := tasknest.OpenTaskCount(state.Tasks, category.Name); count > 0 {
			line += " " + theme.muted().Render(fmt.Sprintf("(%d)", count))
		}
		b.WriteString(line + "\n")
	}

	mode := "off"
	if state.DarkMode {
		mode = "on"
	}
	b.WriteString("\n" + theme.muted().Render("Dark mode: "+mode))

	return theme.panel(sidebarWidth).Render(b.String())
}

// Header renders the signed-in user
func Header(state tasknest.AppState) string {
	theme := ThemeFor(state.DarkMode)
	if state.User == nil {
		return theme.muted().Render("Not signed in")
	}
	return theme.heading().Render(state.User.Name) + "  " + theme.muted().Render(state.User.Email)
}

// Page renders the sidebar next to the header and the current view
func Page(state tasknest.AppState, now time.Time) string {
	view := Dashboard(state, now)
	if state.CurrentView == tasknest.ViewKanban {
		view = Kanban(state, now)
	}
	main := lipgloss.JoinVertical(lipgloss.Left, Header(state), "", view)
	return lipgloss.JoinHorizontal(lipgloss.Top, Sidebar(state), "  ", main)
}

func viewLabel(view tasknest.View) string {
	if view == tasknest.ViewKanban {
		return "Kanban"
	}
	return "Dashboard"
}
