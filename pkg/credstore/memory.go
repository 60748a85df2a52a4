package credstore

import "sync"

// memoryStore is an in-memory Store, used in tests and by callers that do not
// want credentials touching disk.
type memoryStore struct {
	mu    sync.Mutex
	token string
	user  []byte
	saved bool
}

// NewMemoryStore returns a Store that holds credentials only for the lifetime
// of the process.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Save(token string, user []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = append([]byte(nil), user...)
	s.saved = true
	return nil
}

func (s *memoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved || s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *memoryStore) User() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.saved || len(s.user) == 0 {
		return nil, false
	}
	return append([]byte(nil), s.user...), true
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.saved = false
	return nil
}
