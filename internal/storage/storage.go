// Package storage persists taskdeck collections as JSON files in a data
// directory.
//
// Each collection lives in its own file (for example tasks.json) holding a
// schema version, the next record id, and the records sorted by id. All
// access is serialized through file locking so concurrent td processes
// cannot corrupt a collection, and writes go through a temp file plus
// rename so a crash never leaves a half-written file behind.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

var (
	// ErrStorageUnavailable is returned when the data directory or a
	// collection file cannot be opened, read, or parsed.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrNotInitialized is returned when a collection is used before its
	// store was opened. Open is the only constructor, so this normally
	// indicates a zero-value Store or Collection.
	ErrNotInitialized = errors.New("storage not initialized")
)

// Store manages a data directory of collection files.
type Store struct {
	dir string
}

// Open prepares the data directory at dir and returns a store for it.
// Opening an existing directory is idempotent and never destroys data.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty data directory", ErrStorageUnavailable)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrStorageUnavailable, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store was opened on.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ready() error {
	if s == nil || s.dir == "" {
		return ErrNotInitialized
	}
	return nil
}

func (s *Store) collectionPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lockPath(name string) string {
	return filepath.Join(s.dir, name+".lock")
}

// withLock executes fn while holding an exclusive lock for the named
// collection.
func (s *Store) withLock(name string, fn func() error) error {
	lockFile, err := os.OpenFile(s.lockPath(name), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("%w: open lock file: %v", ErrStorageUnavailable, err)
	}
	defer lockFile.Close()

	if err := syscall.Flock(int(lockFile.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("%w: acquire lock: %v", ErrStorageUnavailable, err)
	}
	defer syscall.Flock(int(lockFile.Fd()), syscall.LOCK_UN)

	return fn()
}
