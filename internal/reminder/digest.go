package reminder

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fmizzell/tasknest"
)

// Digest lists open tasks that are overdue or due today. It returns an
// empty string when there is nothing to remind about.
func Digest(state tasknest.AppState, now time.Time) string {
	var overdue, today []tasknest.Task
	for _, task := range state.Tasks {
		if task.Status == tasknest.StatusCompleted {
			continue
		}
		// due today also counts as overdue once the day has started,
		// so today is checked first
		switch {
		case tasknest.IsDueToday(task, now):
			today = append(today, task)
		case tasknest.IsOverdue(task, now):
			overdue = append(overdue, task)
		}
	}
	if len(overdue) == 0 && len(today) == 0 {
		return ""
	}

	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate < overdue[j].DueDate
	})

	var b strings.Builder
	b.WriteString(fmt.Sprintf("⏰ Reminders for %s\n", now.Format("Jan 2, 2006")))
	if len(overdue) > 0 {
		b.WriteString(fmt.Sprintf("\nOverdue (%d)\n", len(overdue)))
		for _, task := range overdue {
			b.WriteString(formatTask(task, state.Categories))
		}
	}
	if len(today) > 0 {
		b.WriteString(fmt.Sprintf("\nDue today (%d)\n", len(today)))
		for _, task := range today {
			b.WriteString(formatTask(task, state.Categories))
		}
	}
	return strings.TrimSpace(b.String())
}

func formatTask(task tasknest.Task, categories []tasknest.Category) string {
	line := fmt.Sprintf("- [%s] %s (%s, due %s)", task.ID, task.Title, task.Priority, task.DueDate)
	if category, ok := tasknest.FindCategory(categories, task.Category); ok {
		line += " · " + category.Name
	}
	return line + "\n"
}
