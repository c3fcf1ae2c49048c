package blobstore

import (
	"context"
	"sync"

	"github.com/vybe/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory blob store, one blob per key.
// It backs saved-look images and the saved-look record list.
type MemoryStore struct {
	data  map[string]*domain.Blob
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory blob store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]*domain.Blob),
	}
}

// Put stores a blob under key, replacing any previous value
func (s *MemoryStore) Put(ctx context.Context, key string, blob *domain.Blob) error {
	if blob == nil {
		return domain.ErrInvalidRequest
	}

	// Copy the bytes so callers can reuse their buffers
	stored := &domain.Blob{
		Data:     append([]byte(nil), blob.Data...),
		MIMEType: blob.MIMEType,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[key] = stored
	return nil
}

// Get retrieves the blob stored under key
func (s *MemoryStore) Get(ctx context.Context, key string) (*domain.Blob, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	blob, exists := s.data[key]
	if !exists {
		return nil, domain.ErrBlobNotFound
	}
	return blob, nil
}

// Delete removes the blob stored under key. Deleting a missing key is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Exists checks whether a blob is stored under key
func (s *MemoryStore) Exists(ctx context.Context, key string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, exists := s.data[key]
	return exists, nil
}

// Size returns the current number of stored blobs (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// Clear removes all stored blobs
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string]*domain.Blob)
}
