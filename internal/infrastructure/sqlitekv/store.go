package sqlitekv

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Slot is one stored key.
type Slot struct {
	Key       string `gorm:"primaryKey;column:slot_key"`
	Value     string
	UpdatedAt time.Time
}

// Store keeps storage slots in a SQLite table. Each Set is a single
// upsert statement.
type Store struct {
	db *gorm.DB
}

// Open opens a SQLite database and runs migrations.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = "tasknest.sqlite"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		log.New(os.Stderr, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the slot value and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var slot Slot
	err := s.db.Where("slot_key = ?", key).First(&slot).Error
	switch {
	case err == nil:
		return slot.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("find slot: %w", err)
	}
}

// Set inserts or replaces the slot value.
func (s *Store) Set(key, value string) error {
	slot := Slot{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}

// Delete removes the slot. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	if err := s.db.Where("slot_key = ?", key).Delete(&Slot{}).Error; err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDirForSQLite creates parent dir for SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
