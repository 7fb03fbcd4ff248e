package tasknest

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultAvatar is the placeholder picture given to every user at login
const DefaultAvatar = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2"

// DemoUserID owns tasks created while nobody is signed in
const DemoUserID = "demo"

// TaskNest is the state container. It owns the only AppState, applies
// actions through Reduce in call order and mirrors every change to Storage.
type TaskNest struct {
	mu      sync.Mutex
	state   AppState
	storage *Storage
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
	ready   bool

	// set by Logout: the emptied task list is kept out of storage until the
	// collection is touched again
	tasksDetached bool
}

// Option configures a TaskNest
type Option func(*TaskNest)

func WithLogger(logger *zap.Logger) Option {
	return func(n *TaskNest) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithClock replaces the wall clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(n *TaskNest) {
		if now != nil {
			n.now = now
		}
	}
}

// WithIDGenerator replaces NewID
func WithIDGenerator(newID func() string) Option {
	return func(n *TaskNest) {
		if newID != nil {
			n.newID = newID
		}
	}
}

// TaskInput holds the user-editable fields of a new task
type TaskInput struct {
	Title       string
	Description string
	Priority    Priority
	Status      Status
	Category    string
	DueDate     string
}

// CategoryInput holds the fields of a new category
type CategoryInput struct {
	Name  string
	Color string
	Icon  string
}

// Open creates a container and hydrates it from storage
func Open(storage *Storage, opts ...Option) *TaskNest {
	n := &TaskNest{
		state:   InitialState(),
		storage: storage,
		logger:  zap.NewNop(),
		now:     time.Now,
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.storage == nil {
		n.storage = NewStorage(NewMemoryMedium(), n.logger)
	}

	n.hydrate()
	n.ready = true
	return n
}

// hydrate loads the five slots. Empty and absent lists are treated alike:
// neither replaces the initial value.
func (n *TaskNest) hydrate() {
	if user := n.storage.User(); user != nil {
		n.apply(UserSet{User: user})
	}
	if tasks := n.storage.Tasks(); len(tasks) > 0 {
		n.apply(TasksSet{Tasks: tasks})
	}
	if categories := n.storage.Categories(); len(categories) > 0 {
		n.apply(CategoriesSet{Categories: categories})
	} else if err := n.storage.SetCategories(DefaultCategories()); err != nil {
		n.logger.Error("failed to seed default categories", zap.Error(err))
	}
	if n.storage.DarkMode() {
		n.apply(DarkModeToggled{})
	}
	n.apply(ViewSet{View: n.storage.View()})

	n.sync()
	n.logger.Debug("state hydrated",
		zap.Int("tasks", len(n.state.Tasks)),
		zap.Int("categories", len(n.state.Categories)),
		zap.Bool("signed_in", n.state.User != nil))
}

// State returns a snapshot of the current state
func (n *TaskNest) State() AppState {
	n.lock()
	defer n.mu.Unlock()

	snapshot := n.state
	snapshot.Tasks = cloneTasks(n.state.Tasks)
	snapshot.Categories = cloneCategories(n.state.Categories)
	if n.state.User != nil {
		user := *n.state.User
		snapshot.User = &user
	}
	return snapshot
}

// Login signs in with any non-empty email and password
func (n *TaskNest) Login(email, password string) (*User, error) {
	n.lock()
	defer n.mu.Unlock()

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	name := email
	if i := strings.Index(email, "@"); i >= 0 {
		name = email[:i]
	}
	user := &User{
		ID:     n.newID(),
		Name:   name,
		Email:  email,
		Avatar: DefaultAvatar,
	}
	n.dispatch(UserSet{User: user})
	n.logger.Info("user signed in", zap.String("user_id", user.ID), zap.String("email", email))

	copied := *user
	return &copied, nil
}

// Logout clears the user and the in-memory tasks. The stored task slot keeps
// its last saved value, so the tasks come back on the next hydration.
func (n *TaskNest) Logout() {
	n.lock()
	defer n.mu.Unlock()

	n.apply(UserSet{User: nil})
	n.apply(TasksSet{Tasks: []Task{}})
	n.tasksDetached = true
	n.sync()
	n.logger.Info("user signed out")
}

// AddTask stamps and appends a new task
func (n *TaskNest) AddTask(input TaskInput) (Task, error) {
	n.lock()
	defer n.mu.Unlock()

	if strings.TrimSpace(input.Title) == "" {
		return Task{}, ErrTitleRequired
	}
	if input.Priority == "" {
		input.Priority = PriorityMedium
	}
	if input.Status == "" {
		input.Status = StatusTodo
	}

	userID := DemoUserID
	if n.state.User != nil {
		userID = n.state.User.ID
	}

	stamp := n.stamp()
	task := Task{
		ID:          n.newID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		Category:    input.Category,
		DueDate:     input.DueDate,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
		UserID:      userID,
	}
	n.dispatch(TaskAdded{Task: task})
	return task, nil
}

// UpdateTask merges update over the task with id. An unknown id changes
// nothing; the bool reports whether the task existed. A blank title is
// rejected with ErrTitleRequired and nothing is dispatched.
func (n *TaskNest) UpdateTask(id string, update TaskUpdate) (bool, error) {
	n.lock()
	defer n.mu.Unlock()

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return false, ErrTitleRequired
	}

	_, found := n.state.FindTask(id)
	n.dispatch(TaskUpdated{ID: id, Updates: update})
	return found, nil
}

// DeleteTask removes the task with id, reporting whether it existed
func (n *TaskNest) DeleteTask(id string) bool {
	n.lock()
	defer n.mu.Unlock()

	_, found := n.state.FindTask(id)
	n.dispatch(TaskDeleted{ID: id})
	return found
}

func (n *TaskNest) SetView(view View) {
	n.lock()
	defer n.mu.Unlock()
	n.dispatch(ViewSet{View: view})
}

func (n *TaskNest) ToggleDarkMode() {
	n.lock()
	defer n.mu.Unlock()
	n.dispatch(DarkModeToggled{})
}

// AddCategory stamps and appends a new category
func (n *TaskNest) AddCategory(input CategoryInput) Category {
	n.lock()
	defer n.mu.Unlock()

	category := Category{
		ID:    n.newID(),
		Name:  input.Name,
		Color: input.Color,
		Icon:  input.Icon,
	}
	n.dispatch(CategoryAdded{Category: category})
	return category
}

// dispatch applies one action and re-persists every slot
func (n *TaskNest) dispatch(action Action) {
	n.apply(action)
	switch action.(type) {
	case TasksSet, TaskAdded, TaskUpdated, TaskDeleted:
		n.tasksDetached = false
	}
	n.sync()
}

func (n *TaskNest) apply(action Action) {
	n.state = Reduce(n.state, action, n.stamp())
	n.logger.Debug("action dispatched", zap.String("action", action.Type()))
}

// sync writes all five slots, changed or not. Write failures are logged;
// the in-memory state stays authoritative.
func (n *TaskNest) sync() {
	writes := []struct {
		key   string
		write func() error
	}{
		{KeyTasks, func() error {
			if n.tasksDetached {
				return nil
			}
			return n.storage.SetTasks(n.state.Tasks)
		}},
		{KeyUser, func() error { return n.storage.SetUser(n.state.User) }},
		{KeyCategories, func() error { return n.storage.SetCategories(n.state.Categories) }},
		{KeyDarkMode, func() error { return n.storage.SetDarkMode(n.state.DarkMode) }},
		{KeyView, func() error { return n.storage.SetView(n.state.CurrentView) }},
	}
	for _, w := range writes {
		if err := w.write(); err != nil {
			n.logger.Error("failed to persist slot", zap.String("key", w.key), zap.Error(err))
		}
	}
}

// stamp is the current time at the precision timestamps are stored with
func (n *TaskNest) stamp() time.Time {
	return n.now().UTC().Truncate(time.Millisecond)
}

// lock acquires the container, panicking if it was never opened
func (n *TaskNest) lock() {
	if n == nil || !n.ready {
		panic(ErrNotInitialized)
	}
	n.mu.Lock()
}
