package tasknest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileMedium keeps every slot in one JSON object on disk.
// No caching - always reads/writes the file. File locking prevents races
// between concurrent CLI invocations.
type FileMedium struct {
	filePath string
	lockPath string
}

// NewFileMedium creates a file-backed medium under <workspaceDir>/.tasknest
func NewFileMedium(workspaceDir string) (*FileMedium, error) {
	dir := filepath.Join(workspaceDir, ".tasknest")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .tasknest directory: %w", err)
	}

	return &FileMedium{
		filePath: filepath.Join(dir, "storage.json"),
		lockPath: filepath.Join(dir, "storage.lock"),
	}, nil
}

// Path returns the storage file location
func (m *FileMedium) Path() string {
	return m.filePath
}

// Get reads one slot
// Lock → Read all → Unlock
func (m *FileMedium) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := m.withFileLock(func() error {
		slots, err := m.readSlots()
		if err != nil {
			return err
		}
		value, ok = slots[key]
		return nil
	})
	return value, ok, err
}

// Set writes one slot
// Lock → Read all → Replace → Write temp → Rename → Unlock
func (m *FileMedium) Set(key, value string) error {
	return m.withFileLock(func() error {
		slots, err := m.readSlots()
		if err != nil {
			// A corrupt file is replaced rather than blocking every write
			slots = map[string]string{}
		}
		slots[key] = value
		return m.writeSlots(slots)
	})
}

// Delete removes one slot
func (m *FileMedium) Delete(key string) error {
	return m.withFileLock(func() error {
		slots, err := m.readSlots()
		if err != nil {
			slots = map[string]string{}
		}
		if _, exists := slots[key]; !exists {
			return nil
		}
		delete(slots, key)
		return m.writeSlots(slots)
	})
}

// withFileLock executes a function holding the workspace lock
func (m *FileMedium) withFileLock(fn func() error) error {
	lock, err := os.OpenFile(m.lockPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}
	defer lock.Close()

	if err := syscall.Flock(int(lock.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock file: %w", err)
	}
	defer syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)

	return fn()
}

// readSlots reads and unmarshals the slot map
func (m *FileMedium) readSlots() (map[string]string, error) {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Empty file
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	slots := map[string]string{}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal storage: %w", err)
	}
	return slots, nil
}

// writeSlots marshals the slot map to a temp file and renames it into place
func (m *FileMedium) writeSlots(slots map[string]string) error {
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.filePath), "storage-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, m.filePath); err != nil {
		return fmt.Errorf("failed to replace storage file: %w", err)
	}
	return nil
}
