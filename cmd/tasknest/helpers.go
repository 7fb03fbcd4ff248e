package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fmizzell/tasknest"
	"github.com/fmizzell/tasknest/internal/config"
	"github.com/fmizzell/tasknest/internal/infrastructure/boltkv"
	"github.com/fmizzell/tasknest/internal/infrastructure/sqlitekv"
	"github.com/fmizzell/tasknest/internal/logger"
)

var (
	workspaceFlag string
	storageFlag   string
)

// clock is replaced in tests
var clock = time.Now

var (
	_ tasknest.Medium = (*boltkv.Store)(nil)
	_ tasknest.Medium = (*sqlitekv.Store)(nil)
)

// exit is replaced in tests
var exit = os.Exit

// releases are run by fatal so storage is closed and logs are flushed on
// error paths too
var (
	releaseMu   sync.Mutex
	releases    = map[int]func(){}
	nextRelease int
)

// fatal prints an error message, releases open storage and exits
func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	runReleases()
	exit(1)
}

// trackRelease registers release with fatal and returns a func that runs it
// at most once and unregisters it
func trackRelease(release func()) func() {
	releaseMu.Lock()
	id := nextRelease
	nextRelease++
	var once sync.Once
	tracked := func() {
		once.Do(func() {
			releaseMu.Lock()
			delete(releases, id)
			releaseMu.Unlock()
			release()
		})
	}
	releases[id] = tracked
	releaseMu.Unlock()
	return tracked
}

func runReleases() {
	releaseMu.Lock()
	pending := make([]func(), 0, len(releases))
	for _, release := range releases {
		pending = append(pending, release)
	}
	releaseMu.Unlock()

	for _, release := range pending {
		release()
	}
}

// loadConfig reads the environment and applies the persistent flags on top
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if workspaceFlag != "" {
		cfg.Workspace = workspaceFlag
	}
	if storageFlag != "" {
		cfg.Storage = strings.ToLower(storageFlag)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(cfg.Workspace)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}
	cfg.Workspace = abs
	return cfg, nil
}

// openMedium builds the configured storage backend and its closer
func openMedium(cfg *config.Config) (tasknest.Medium, func() error, error) {
	noop := func() error { return nil }
	dataDir := filepath.Join(cfg.Workspace, ".tasknest")

	switch cfg.Storage {
	case config.StorageMemory:
		return tasknest.NewMemoryMedium(), noop, nil
	case config.StorageBolt:
		store, err := boltkv.Open(filepath.Join(dataDir, "tasknest.db"), "slots")
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt storage: %w", err)
		}
		return store, store.Close, nil
	case config.StorageSQLite:
		store, err := sqlitekv.Open(filepath.Join(dataDir, "tasknest.sqlite"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return store, store.Close, nil
	default:
		medium, err := tasknest.NewFileMedium(cfg.Workspace)
		if err != nil {
			return nil, nil, err
		}
		return medium, noop, nil
	}
}

// openNest loads config, logger and storage and hydrates a container.
// The returned func releases the storage backend.
func openNest() (*tasknest.TaskNest, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	medium, closeMedium, err := openMedium(cfg)
	if err != nil {
		return nil, nil, err
	}

	log.Debug("storage opened",
		zap.String("driver", cfg.Storage),
		zap.String("workspace", cfg.Workspace))

	nest := tasknest.Open(
		tasknest.NewStorage(medium, log),
		tasknest.WithLogger(log),
		tasknest.WithClock(clock),
	)

	release := func() {
		if err := closeMedium(); err != nil {
			log.Warn("failed to close storage", zap.Error(err))
		}
		_ = log.Sync()
	}
	return nest, release, nil
}

// mustOpenNest is openNest for command handlers
func mustOpenNest() (*tasknest.TaskNest, func()) {
	nest, release, err := openNest()
	if err != nil {
		fatal("Failed to load tasknest: %v", err)
	}
	return nest, trackRelease(release)
}

// requireUser stops commands that need a signed-in user
func requireUser(nest *tasknest.TaskNest) *tasknest.User {
	user := nest.State().User
	if user == nil {
		fatal("Not logged in. Run `tasknest login --email <email> --password <password>` first.")
	}
	return user
}

func statusIcon(status tasknest.Status) string {
	switch status {
	case tasknest.StatusCompleted:
		return "✓"
	case tasknest.StatusInProgress:
		return "→"
	default:
		return "○"
	}
}

// printTask writes the one-task summary used by list and the task commands
func printTask(task tasknest.Task) {
	fmt.Printf("%s [%s] %s\n", statusIcon(task.Status), task.ID, task.Title)
	if task.Description != "" {
		fmt.Printf("   %s\n", task.Description)
	}
	meta := []string{string(task.Priority)}
	if task.Category != "" {
		meta = append(meta, task.Category)
	}
	if task.DueDate != "" {
		meta = append(meta, "due "+task.DueDate)
	}
	fmt.Printf("   %s\n", strings.Join(meta, " · "))
}
