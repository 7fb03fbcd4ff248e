package tasknest

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Storage keys, one slot per AppState field
const (
	KeyTasks      = "tasknest_tasks"
	KeyUser       = "tasknest_user"
	KeyCategories = "tasknest_categories"
	KeyDarkMode   = "tasknest_dark_mode"
	KeyView       = "tasknest_view"
)

// Medium is a synchronous string key-value store. Set must be atomic per
// key: a reader never observes a partially written value.
type Medium interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Storage reads and writes the five JSON slots on a Medium. Reads never
// fail: a missing, unreadable or malformed slot yields its default.
type Storage struct {
	medium Medium
	logger *zap.Logger
}

// NewStorage creates a Storage on top of medium
func NewStorage(medium Medium, logger *zap.Logger) *Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Storage{medium: medium, logger: logger}
}

// Tasks returns the stored tasks, or an empty list
func (s *Storage) Tasks() []Task {
	tasks := readSlot(s, KeyTasks, []Task{})
	if tasks == nil {
		return []Task{}
	}
	return tasks
}

func (s *Storage) SetTasks(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	return writeSlot(s, KeyTasks, tasks)
}

// User returns the stored user, or nil
func (s *Storage) User() *User {
	return readSlot[*User](s, KeyUser, nil)
}

// SetUser stores user; nil removes the slot
func (s *Storage) SetUser(user *User) error {
	if user == nil {
		if err := s.medium.Delete(KeyUser); err != nil {
			return fmt.Errorf("failed to delete %s: %w", KeyUser, err)
		}
		return nil
	}
	return writeSlot(s, KeyUser, user)
}

// Categories returns the stored categories, or an empty list
func (s *Storage) Categories() []Category {
	categories := readSlot(s, KeyCategories, []Category{})
	if categories == nil {
		return []Category{}
	}
	return categories
}

func (s *Storage) SetCategories(categories []Category) error {
	if categories == nil {
		categories = []Category{}
	}
	return writeSlot(s, KeyCategories, categories)
}

// DarkMode returns the stored flag, or false
func (s *Storage) DarkMode() bool {
	return readSlot(s, KeyDarkMode, false)
}

func (s *Storage) SetDarkMode(dark bool) error {
	return writeSlot(s, KeyDarkMode, dark)
}

// View returns the stored view, or dashboard for anything unrecognised
func (s *Storage) View() View {
	view := readSlot(s, KeyView, ViewDashboard)
	if !view.Valid() {
		s.logger.Warn("unknown view in storage, using default", zap.String("view", string(view)))
		return ViewDashboard
	}
	return view
}

func (s *Storage) SetView(view View) error {
	return writeSlot(s, KeyView, view)
}

func readSlot[T any](s *Storage, key string, fallback T) T {
	raw, ok, err := s.medium.Get(key)
	if err != nil {
		s.logger.Warn("storage read failed, using default", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !ok || raw == "" {
		return fallback
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.logger.Warn("malformed storage slot, using default", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return value
}

func writeSlot[T any](s *Storage, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.medium.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// MemoryMedium keeps slots in process memory
type MemoryMedium struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{slots: make(map[string]string)}
}

func (m *MemoryMedium) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.slots[key]
	return value, ok, nil
}

func (m *MemoryMedium) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}

func (m *MemoryMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}
