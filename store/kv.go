package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// KeyValue is the durable backend the mission store writes through. Values
// are opaque strings; the store keeps the whole collection under one key.
type KeyValue interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (value string, ok bool, err error)
	// Set writes value under key, fully replacing any previous value.
	Set(key, value string) error
	// Close releases any resources held by the backend.
	Close() error
}

// FileKeyValue stores each key as a file in a data directory. Writes go
// through a temp file and rename, and a directory-wide flock serializes
// access across processes.
type FileKeyValue struct {
	dir string
	flk *flock.Flock
}

// NewFileKeyValue creates the data directory if needed and prepares the
// lock file.
func NewFileKeyValue(dir string) (*FileKeyValue, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileKeyValue{
		dir: dir,
		flk: flock.New(filepath.Join(dir, ".lock")),
	}, nil
}

// keyFileName maps a key to a safe file name. Keys like "@missions_data_v1"
// contain characters that are awkward in file names on some platforms.
func keyFileName(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
	return sanitized + ".json"
}

func (s *FileKeyValue) path(key string) string {
	return filepath.Join(s.dir, keyFileName(key))
}

// Get reads the value for key. A missing file is not an error; it reports
// the key as absent.
func (s *FileKeyValue) Get(key string) (string, bool, error) {
	if err := s.flk.Lock(); err != nil {
		return "", false, fmt.Errorf("could not lock data directory for read: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read %s: %w", s.path(key), err)
	}
	return string(data), true, nil
}

// Set writes the value atomically: to a temp file first, then renamed over
// the destination so readers never observe a partial write.
func (s *FileKeyValue) Set(key, value string) error {
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("could not lock data directory for write: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	target := s.path(key)
	tempFilePath := target + ".tmp"
	defer func() { _ = os.Remove(tempFilePath) }()

	if err := os.WriteFile(tempFilePath, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file %s: %w", tempFilePath, err)
	}
	if err := os.Rename(tempFilePath, target); err != nil {
		return fmt.Errorf("failed to rename temporary file %s to %s: %w", tempFilePath, target, err)
	}
	return nil
}

// Close releases the directory lock. flock.Unlock is safe to call when the
// lock is not held.
func (s *FileKeyValue) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
