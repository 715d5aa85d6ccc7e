// Package storage abstracts durable persistence of the configuration
// blob. The core depends only on the Store interface; the file-backed
// implementation is the default, the in-memory one serves tests.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes a single opaque blob.
type Store interface {
	// Load returns the blob and whether one existed. A missing blob is
	// not an error.
	Load() ([]byte, bool, error)
	// Save replaces the blob.
	Save(data []byte) error
}

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir = ".config/menuctl"
	blobFileName  = "menu.json"
)

// FileStore persists the blob as a file under the user config dir.
type FileStore struct {
	path string
}

// NewFileStore places the blob at the default user location.
func NewFileStore() (*FileStore, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &FileStore{path: filepath.Join(home, userConfigDir, blobFileName)}, nil
}

// NewFileStoreAt uses an explicit path instead of the default location.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns where the blob lives on disk.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return data, true, nil
}

func (s *FileStore) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	data []byte
	set  bool
}

func (s *MemStore) Load() ([]byte, bool, error) {
	if !s.set {
		return nil, false, nil
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, true, nil
}

func (s *MemStore) Save(data []byte) error {
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.set = true
	return nil
}
