package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fmizzell/tasknest"
)

// CardWidth is the inner width of a task card
const CardWidth = 34

// FormatDate renders a due date like "Oct 14, 2026"
func FormatDate(due string) string {
	t, ok := tasknest.ParseDueDate(due, time.Local)
	if !ok {
		return due
	}
	return t.Format("Jan 2, 2006")
}

// TaskCard renders one task. A category name with no matching category is
// drawn without decoration.
func TaskCard(task tasknest.Task, categories []tasknest.Category, now time.Time, theme Theme) string {
	var lines []string

	check := theme.muted().Render("○")
	title := theme.heading()
	if task.Status == tasknest.StatusCompleted {
		check = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		title = title.Strikethrough(true).Faint(true)
	}
	lines = append(lines, fmt.Sprintf("%s %s", check, title.Render(task.Title)))

	if task.Description != "" {
		lines = append(lines, theme.text().Render(task.Description))
	}

	meta := []string{
		lipgloss.NewStyle().Foreground(theme.priorityColor(task.Priority)).Render("⚑ " + PriorityLabel(task.Priority)),
	}
	if category, ok := tasknest.FindCategory(categories, task.Category); ok {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(category.Color)).Render("●")
		meta = append(meta, dot+" "+theme.muted().Render(category.Name))
	}
	lines = append(lines, strings.Join(meta, "  "))
	if task.DueDate != "" {
		lines = append(lines, dueStyle(task, now, theme).Render("📅 "+FormatDate(task.DueDate)))
	}
	lines = append(lines, theme.muted().Render("#"+task.ID))

	return theme.panel(CardWidth).Render(strings.Join(lines, "\n"))
}

func dueStyle(task tasknest.Task, now time.Time, theme Theme) lipgloss.Style {
	switch {
	case task.Status == tasknest.StatusCompleted:
		return theme.muted()
	case tasknest.IsDueToday(task, now):
		return lipgloss.NewStyle().Foreground(theme.Warning)
	case tasknest.IsOverdue(task, now):
		return lipgloss.NewStyle().Foreground(theme.Danger)
	default:
		return theme.muted()
	}
}
