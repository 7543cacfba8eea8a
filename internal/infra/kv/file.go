// Package kv provides key-value persistence backends for the
// domain.KeyValue port: a JSON file store and a SQLite store.
package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/daybook-app/daybook/internal/domain"
)

// fileData is the JSON file structure: every persisted slice keyed by
// its storage key, values kept as raw JSON.
type fileData map[string]json.RawMessage

// FileStore implements domain.KeyValue using a single JSON file guarded
// by an advisory file lock.
type FileStore struct {
	path     string
	lockPath string
}

// NewFileStore creates a FileStore for the given file path.
// The file does not need to exist; it will be created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		lockPath: path + ".lock",
	}
}

// IsInitialized checks if the store file exists.
func (s *FileStore) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *FileStore) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}
	return s.write(fileData{})
}

// Get returns the stored value for key, or (nil, nil) when absent.
func (s *FileStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.withLock(syscall.LOCK_SH, func(data fileData) error {
		if raw, ok := data[key]; ok {
			value = slices.Clone(raw)
		}
		return nil
	}, false)
	return value, err
}

// Set replaces the value for key.
func (s *FileStore) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}
	return s.withLock(syscall.LOCK_EX, func(data fileData) error {
		data[key] = slices.Clone(value)
		return nil
	}, true)
}

// Remove deletes the key. Removing an absent key is not an error.
func (s *FileStore) Remove(key string) error {
	return s.withLock(syscall.LOCK_EX, func(data fileData) error {
		delete(data, key)
		return nil
	}, true)
}

// Keys lists every stored key in sorted order.
func (s *FileStore) Keys() ([]string, error) {
	var keys []string
	err := s.withLock(syscall.LOCK_SH, func(data fileData) error {
		for k := range data {
			keys = append(keys, k)
		}
		return nil
	}, false)
	slices.Sort(keys)
	return keys, err
}

// withLock executes fn under an advisory lock, writing the result back
// when write is true.
func (s *FileStore) withLock(lockType int, fn func(fileData) error, write bool) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	if write {
		return s.write(data)
	}
	return nil
}

func (s *FileStore) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return lock, nil
}

func (s *FileStore) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *FileStore) read() (fileData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fileData{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	data := fileData{}
	if len(content) > 0 {
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("parse store file: %w", err)
		}
	}
	return data, nil
}

func (s *FileStore) write(data fileData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Ensure FileStore implements the port.
var _ domain.KeyValue = (*FileStore)(nil)
