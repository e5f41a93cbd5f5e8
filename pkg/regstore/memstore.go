package regstore

import (
	"sync"
)

// MemStore is an in-memory [Store] used by tests and by platforms without a
// registry. The error fields, when set, are returned by the corresponding
// operation to simulate store failures.
type MemStore struct {
	ReadErr   error
	WriteErr  error
	DeleteErr error

	mu     sync.RWMutex
	values map[string]uint32
}

// NewMemStore returns an empty [MemStore].
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]uint32{}}
}

func (s *MemStore) Read(path, name string) (uint32, bool, error) {
	if s.ReadErr != nil {
		return 0, false, s.ReadErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[path+`\`+name]

	return val, ok, nil
}

func (s *MemStore) Write(path, name string, val uint32) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[path+`\`+name] = val

	return nil
}

func (s *MemStore) Delete(path, name string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, path+`\`+name)

	return nil
}

// Len reports the number of stored values.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
