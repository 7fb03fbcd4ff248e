package tasknest

import "time"

// Reduce computes the next state. It never mutates state: every slice it
// changes is copied first, so earlier snapshots stay valid. now is used to
// restamp UpdatedAt on task updates.
func Reduce(state AppState, action Action, now time.Time) AppState {
	switch a := action.(type) {
	case UserSet:
		state.User = a.User
	case TasksSet:
		state.Tasks = cloneTasks(a.Tasks)
	case TaskAdded:
		state.Tasks = reduceTaskAdded(state.Tasks, a)
	case TaskUpdated:
		state.Tasks = reduceTaskUpdated(state.Tasks, a, now)
	case TaskDeleted:
		state.Tasks = reduceTaskDeleted(state.Tasks, a)
	case ViewSet:
		state.CurrentView = a.View
	case DarkModeToggled:
		state.DarkMode = !state.DarkMode
	case CategoriesSet:
		state.Categories = cloneCategories(a.Categories)
	case CategoryAdded:
		categories := make([]Category, 0, len(state.Categories)+1)
		categories = append(categories, state.Categories...)
		state.Categories = append(categories, a.Category)
	}
	return state
}

// reduceTaskAdded appends to the end of the collection
func reduceTaskAdded(tasks []Task, a TaskAdded) []Task {
	next := make([]Task, 0, len(tasks)+1)
	next = append(next, tasks...)
	return append(next, a.Task)
}

// reduceTaskUpdated merges the update and restamps UpdatedAt, even when no
// field differs. An unknown id returns the collection untouched.
func reduceTaskUpdated(tasks []Task, a TaskUpdated, now time.Time) []Task {
	index := -1
	for i, task := range tasks {
		if task.ID == a.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return tasks
	}

	next := cloneTasks(tasks)
	task := a.Updates.apply(next[index])
	task.UpdatedAt = now
	next[index] = task
	return next
}

// reduceTaskDeleted filters out the task with the given id
func reduceTaskDeleted(tasks []Task, a TaskDeleted) []Task {
	next := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != a.ID {
			next = append(next, task)
		}
	}
	return next
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
