// Package store owns the durable task file. It is the only code that
// touches disk; everything above it works with in-memory collections.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"tasklite/internal/task"
)

// Store reads and writes the task collection at a fixed file path.
// The path is injected so each caller (and each test) can point the store
// at its own file.
type Store struct {
	path string
}

// New creates a store backed by the file at path. The file is not touched
// until the first Load or Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the durable file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full collection from disk.
//
// A missing file is a valid initial state: the store writes an empty
// collection to disk and returns it, so external inspection afterwards sees
// a well-formed file rather than absence. A file that fails strict decoding
// is treated as corrupt: the store logs a warning and resets it to an empty
// collection (data loss is the accepted cost; no repair is attempted).
// Any other I/O failure is returned as-is.
func (s *Store) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := s.Save(nil); err != nil {
			return nil, err
		}
		return []task.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	tasks, err := task.DecodeCollection(data)
	if err != nil {
		slog.Warn("resetting corrupt task file", "path", s.path, "err", err)
		if err := s.Save(nil); err != nil {
			return nil, err
		}
		return []task.Task{}, nil
	}
	return tasks, nil
}

// Save replaces the durable file with the canonical encoding of tasks.
// The write goes through a temp file in the same directory followed by a
// rename, so readers never observe a partially written file.
func (s *Store) Save(tasks []task.Task) error {
	b, err := task.EncodeCollection(tasks)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("store: create directory %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("store: rename %s: %w", s.path, err)
	}
	return nil
}
