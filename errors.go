package tasknest

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an empty email or password
	ErrInvalidCredentials = errors.New("email and password are required")

	// ErrTitleRequired is returned when a task is added without a title
	ErrTitleRequired = errors.New("task title is required")

	// ErrNotInitialized means a TaskNest was used without Open. It is raised
	// as a panic, never returned.
	ErrNotInitialized = errors.New("tasknest: container used before Open")

	ErrInvalidPriority = errors.New("priority must be one of high, medium, low")
	ErrInvalidStatus   = errors.New("status must be one of todo, in-progress, completed")
	ErrInvalidView     = errors.New("view must be dashboard or kanban")
)
