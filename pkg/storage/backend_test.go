package storage

import (
	"bytes"
	"errors"
	"testing"
)

// backendTestSuite runs a comprehensive test suite against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	t.Run("CreateBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.CreateBucket([]byte("test")); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}

		exists, err := backend.BucketExists([]byte("test"))
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		// Idempotent
		if err := backend.CreateBucket([]byte("test")); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("DeleteBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))
		if err := backend.DeleteBucket([]byte("test")); err != nil {
			t.Fatalf("DeleteBucket failed: %v", err)
		}

		exists, _ := backend.BucketExists([]byte("test"))
		if exists {
			t.Error("Bucket should not exist after deletion")
		}

		// Idempotent
		if err := backend.DeleteBucket([]byte("test")); err != nil {
			t.Errorf("DeleteBucket should be idempotent: %v", err)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		key := []byte("key1")
		value := []byte("value1")
		if err := backend.Put([]byte("test"), key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := backend.Get([]byte("test"), key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Non-existent key
		got, err = backend.Get([]byte("test"), []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		if err := backend.Put([]byte("nope"), []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put to missing bucket = %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get from missing bucket = %v, want ErrBucketNotFound", err)
		}
		if err := backend.Delete([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Delete from missing bucket = %v, want ErrBucketNotFound", err)
		}
		err = backend.ForEach([]byte("nope"), func(k, v []byte) error { return nil })
		if !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("ForEach over missing bucket = %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))
		key := []byte("key1")
		backend.Put([]byte("test"), key, []byte("value1"))

		if err := backend.Delete([]byte("test"), key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}

		got, _ := backend.Get([]byte("test"), key)
		if got != nil {
			t.Error("Key should not exist after deletion")
		}
	})

	t.Run("ForEach", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		expected := map[string]string{
			"key1": "value1",
			"key2": "value2",
			"key3": "value3",
		}
		for k, v := range expected {
			backend.Put([]byte("test"), []byte(k), []byte(v))
		}

		collected := make(map[string]string)
		err = backend.ForEach([]byte("test"), func(k, v []byte) error {
			collected[string(k)] = string(v)
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}

		if len(collected) != len(expected) {
			t.Errorf("ForEach collected %d items, want %d", len(collected), len(expected))
		}
		for k, v := range expected {
			if collected[k] != v {
				t.Errorf("ForEach: key %s = %s, want %s", k, collected[k], v)
			}
		}
	})

	t.Run("StringHelpers", func(t *testing.T) {
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		defer cleanup()

		backend.CreateBucket([]byte("test"))

		if err := PutString(backend, []byte("test"), "key1", []byte("value1")); err != nil {
			t.Fatalf("PutString failed: %v", err)
		}

		got, err := GetString(backend, []byte("test"), "key1")
		if err != nil {
			t.Fatalf("GetString failed: %v", err)
		}
		if !bytes.Equal(got, []byte("value1")) {
			t.Errorf("GetString returned %s, want value1", got)
		}

		if err := DeleteString(backend, []byte("test"), "key1"); err != nil {
			t.Fatalf("DeleteString failed: %v", err)
		}
		got, _ = GetString(backend, []byte("test"), "key1")
		if got != nil {
			t.Error("Key should not exist after DeleteString")
		}
	})
}
