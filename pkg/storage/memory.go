package storage

import (
	"fmt"
	"sync"
)

// MemoryBackend implements Backend using in-memory maps (not persistent)
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

// NewMemoryBackend creates a new in-memory storage backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

// CreateBucket creates a new bucket
func (m *MemoryBackend) CreateBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	nameStr := string(name)
	if _, exists := m.buckets[nameStr]; !exists {
		m.buckets[nameStr] = make(map[string][]byte)
	}

	return nil
}

// DeleteBucket deletes a bucket
func (m *MemoryBackend) DeleteBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, string(name))

	return nil
}

// BucketExists checks if a bucket exists
func (m *MemoryBackend) BucketExists(name []byte) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.buckets[string(name)]

	return exists, nil
}

// Put stores a key-value pair in a bucket
func (m *MemoryBackend) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	// Copy value to prevent external modifications
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	bkt[string(key)] = valueCopy

	return nil
}

// Get retrieves a value from a bucket. A missing key yields (nil, nil).
func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}

	// Return a copy to prevent external modifications
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return valueCopy, nil
}

// Delete removes a key from a bucket
func (m *MemoryBackend) Delete(bucket, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	delete(bkt, string(key))

	return nil
}

// ForEach iterates over all key-value pairs in a bucket
func (m *MemoryBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	for k, v := range bkt {
		if err := fn([]byte(k), v); err != nil {
			return err
		}
	}

	return nil
}

// Close is a no-op for memory backend
func (m *MemoryBackend) Close() error {
	return nil
}
