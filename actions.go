package tasknest

// Action is one intended state transition
type Action interface {
	Type() string
}

// UserSet replaces the active user; nil signs out
type UserSet struct {
	User *User
}

func (a UserSet) Type() string { return "set_user" }

// TasksSet replaces the whole task collection
type TasksSet struct {
	Tasks []Task
}

func (a TasksSet) Type() string { return "set_tasks" }

// TaskAdded appends a fully stamped task
type TaskAdded struct {
	Task Task
}

func (a TaskAdded) Type() string { return "add_task" }

// TaskUpdated merges Updates over the task with ID
type TaskUpdated struct {
	ID      string
	Updates TaskUpdate
}

func (a TaskUpdated) Type() string { return "update_task" }

// TaskDeleted removes the task with ID
type TaskDeleted struct {
	ID string
}

func (a TaskDeleted) Type() string { return "delete_task" }

// ViewSet switches between dashboard and kanban
type ViewSet struct {
	View View
}

func (a ViewSet) Type() string { return "set_view" }

// DarkModeToggled flips the dark mode flag
type DarkModeToggled struct{}

func (a DarkModeToggled) Type() string { return "toggle_dark_mode" }

// CategoriesSet replaces the whole category collection
type CategoriesSet struct {
	Categories []Category
}

func (a CategoriesSet) Type() string { return "set_categories" }

// CategoryAdded appends a fully stamped category
type CategoryAdded struct {
	Category Category
}

func (a CategoryAdded) Type() string { return "add_category" }

// TaskUpdate is a partial task. Nil fields are left as they are.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	Category    *string
	DueDate     *string
}

// apply merges the set fields over task
func (u TaskUpdate) apply(task Task) Task {
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	if u.Status != nil {
		task.Status = *u.Status
	}
	if u.Category != nil {
		task.Category = *u.Category
	}
	if u.DueDate != nil {
		task.DueDate = *u.DueDate
	}
	return task
}

// IsEmpty reports whether no field is set
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Priority == nil &&
		u.Status == nil && u.Category == nil && u.DueDate == nil
}

// StatusUpdate is shorthand for a status-only update
func StatusUpdate(status Status) TaskUpdate {
	return TaskUpdate{Status: &status}
}
