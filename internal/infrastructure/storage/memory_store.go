package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryObjectStore keeps objects in process memory. It backs the archive
// when S3 is disabled and in tests.
type MemoryObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	// BaseURL prefixes generated download links
	BaseURL string
}

// NewMemoryObjectStore creates an empty store
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		objects: make(map[string][]byte),
		BaseURL: "memory://archive",
	}
}

// Upload stores a copy of data under key
func (s *MemoryObjectStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	if key == "" {
		return ErrKeyRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

// ObjectExists reports whether key was uploaded
func (s *MemoryObjectStore) ObjectExists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrKeyRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

// DownloadURL returns a fake link that expires after expiresIn
func (s *MemoryObjectStore) DownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, ErrKeyRequired
	}
	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/" + key + "?expires=" + expiresAt.UTC().Format(time.RFC3339), expiresAt, nil
}

// Object returns the stored bytes
func (s *MemoryObjectStore) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

var _ ObjectStore = (*MemoryObjectStore)(nil)
