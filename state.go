package tasknest

import (
	"strings"
	"time"
)

// Priority ranks a task
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority accepts a priority name in any case
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", ErrInvalidPriority
	}
	return p, nil
}

// Status is the kanban column a task sits in
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Statuses lists the kanban columns in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus accepts a status name; "pending" is an alias for todo
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "pending" {
		return StatusTodo, nil
	}
	st := Status(normalized)
	if !st.Valid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// View is the screen the application shows after login
type View string

const (
	ViewDashboard View = "dashboard"
	ViewKanban    View = "kanban"
)

func (v View) Valid() bool {
	return v == ViewDashboard || v == ViewKanban
}

func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", ErrInvalidView
	}
	return v, nil
}

// User is the single signed-in identity
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

// Task represents a task in the system.
// Category holds a category *name*, not an id, and may dangle.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	Category    string    `json:"category"`
	DueDate     string    `json:"dueDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
}

// Category groups tasks by area of life
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// AppState is the aggregate root held by the container
type AppState struct {
	User        *User
	Tasks       []Task
	Categories  []Category
	CurrentView View
	DarkMode    bool
}

// DefaultCategories returns the categories seeded on first run
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Work", Color: "#3B82F6", Icon: string(IconBriefcase)},
		{ID: "2", Name: "Personal", Color: "#10B981", Icon: string(IconUser)},
		{ID: "3", Name: "Health", Color: "#F59E0B", Icon: string(IconHeart)},
		{ID: "4", Name: "Studies", Color: "#8B5CF6", Icon: string(IconBookOpen)},
		{ID: "5", Name: "Hobbies", Color: "#EF4444", Icon: string(IconStar)},
	}
}

// InitialState is the state before hydration
func InitialState() AppState {
	return AppState{
		Tasks:       []Task{},
		Categories:  DefaultCategories(),
		CurrentView: ViewDashboard,
	}
}

// FindTask returns the task with the given id
func (s AppState) FindTask(id string) (Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

// FindCategory resolves a task's category name. A name with no matching
// category is reported as not found.
func FindCategory(categories []Category, name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
