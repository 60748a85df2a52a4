package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps credentials in a single JSON file with 0600 permissions.
type fileStore struct {
	mu   sync.Mutex
	path string
}

type fileContents struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user,omitempty"`
}

// NewFileStore returns a Store backed by the JSON file at path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Save(token string, user []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents := fileContents{Token: token, User: user}
	data, err := json.Marshal(contents)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create credential directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

func (s *fileStore) Token() (string, bool) {
	contents, ok := s.read()
	if !ok || contents.Token == "" {
		return "", false
	}
	return contents.Token, true
}

func (s *fileStore) User() ([]byte, bool) {
	contents, ok := s.read()
	if !ok || len(contents.User) == 0 {
		return nil, false
	}
	return contents.User, true
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

func (s *fileStore) read() (fileContents, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fileContents{}, false
	}
	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return fileContents{}, false
	}
	return contents, true
}
