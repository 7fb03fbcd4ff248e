package tasknest

import (
	"sort"
	"time"
)

// DateLayout is the calendar date format of Task.DueDate
const DateLayout = "2006-01-02"

// Stats are the dashboard counters
type Stats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
	Overdue    int `json:"overdue"`
}

// ParseDueDate reads a due date as midnight of that calendar day in loc.
// Full RFC 3339 timestamps are accepted as well.
func ParseDueDate(due string, loc *time.Location) (time.Time, bool) {
	if due == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, due, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, due); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// IsOverdue reports a due date strictly before now on a task that is not
// completed
func IsOverdue(task Task, now time.Time) bool {
	if task.Status == StatusCompleted {
		return false
	}
	due, ok := ParseDueDate(task.DueDate, now.Location())
	if !ok {
		return false
	}
	return due.Before(now)
}

// IsDueToday compares calendar days in now's location, ignoring time of day
func IsDueToday(task Task, now time.Time) bool {
	due, ok := ParseDueDate(task.DueDate, now.Location())
	if !ok {
		return false
	}
	dy, dm, dd := due.Date()
	ny, nm, nd := now.Date()
	return dy == ny && dm == nm && dd == nd
}

// ComputeStats counts tasks per status and overdue tasks
func ComputeStats(tasks []Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusInProgress:
			stats.InProgress++
		case StatusTodo:
			stats.Pending++
		}
		if IsOverdue(task, now) {
			stats.Overdue++
		}
	}
	return stats
}

// UpcomingTasks returns open tasks with a due date, soonest first
func UpcomingTasks(tasks []Task, limit int) []Task {
	var upcoming []Task
	for _, task := range tasks {
		if task.DueDate != "" && task.Status != StatusCompleted {
			upcoming = append(upcoming, task)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		di, _ := ParseDueDate(upcoming[i].DueDate, time.UTC)
		dj, _ := ParseDueDate(upcoming[j].DueDate, time.UTC)
		return di.Before(dj)
	})
	return truncate(upcoming, limit)
}

// RecentTasks returns open tasks, most recently updated first
func RecentTasks(tasks []Task, limit int) []Task {
	var recent []Task
	for _, task := range tasks {
		if task.Status != StatusCompleted {
			recent = append(recent, task)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].UpdatedAt.After(recent[j].UpdatedAt)
	})
	return truncate(recent, limit)
}

// TasksByStatus returns one kanban column in insertion order
func TasksByStatus(tasks []Task, status Status) []Task {
	var column []Task
	for _, task := range tasks {
		if task.Status == status {
			column = append(column, task)
		}
	}
	return column
}

// OpenTaskCount counts the tasks referencing categoryName that are not done
func OpenTaskCount(tasks []Task, categoryName string) int {
	count := 0
	for _, task := range tasks {
		if task.Category == categoryName && task.Status != StatusCompleted {
			count++
		}
	}
	return count
}

// NextStatus is the check-box toggle on a task card
func NextStatus(status Status) Status {
	if status == StatusCompleted {
		return StatusTodo
	}
	return StatusCompleted
}

func truncate(tasks []Task, limit int) []Task {
	if limit > 0 && len(tasks) > limit {
		return tasks[:limit]
	}
	return tasks
}
