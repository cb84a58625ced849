package weedtest

import (
	"errors"
	"sync"
)

// ErrKeyNotFound is returned when a file id has no stored blob.
var ErrKeyNotFound = errors.New("weedtest: key not found")

// blobStore is a thread-safe in-memory blob store keyed by file id string.
// It backs the fake volume server.
type blobStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newBlobStore() *blobStore {
	return &blobStore{data: make(map[string][]byte)}
}

// Get retrieves a blob. Returns a copy so callers cannot mutate stored data.
func (s *blobStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.data[key]
	if !exists {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Put stores a blob, overwriting any previous content for the key.
func (s *blobStore) Put(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
}

// Delete removes a blob and reports the number of bytes freed.
// Deleting an absent key is not an error and frees zero bytes.
func (s *blobStore) Delete(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.data[key])
	delete(s.data, key)
	return n
}
