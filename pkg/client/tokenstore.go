package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenStore persists the admin session token between calls.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token in a file under a config directory,
// surviving between CLI invocations.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a store writing to dir/adminToken.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Join(dir, "adminToken")}
}

// Token reads the stored token, or "" when logged out.
func (s *FileTokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Save writes the token with owner-only permissions.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0600)
}

// Clear removes the stored token. A missing file is not an error.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore holds the token in memory, for tests and embedded
// use.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

// Token returns the held token.
func (s *MemoryTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Save replaces the held token.
func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear drops the held token.
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
