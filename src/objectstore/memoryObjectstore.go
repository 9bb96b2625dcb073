// In-process implementation of the object store, used as the emulator default
// and as the test double.
package objectstore

import (
	"context"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/awslite/tablexport/src/errs"
)

type MemoryObjectStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
}

func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{
		buckets: make(map[string]map[string][]byte),
	}
}

func (ms *MemoryObjectStore) CreateBucket(bucketName string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.buckets[bucketName]; !ok {
		ms.buckets[bucketName] = make(map[string][]byte)
	}
}

func (ms *MemoryObjectStore) BucketExists(_ context.Context, bucketName string) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	_, ok := ms.buckets[bucketName]
	return ok, nil
}

func (ms *MemoryObjectStore) PutObject(_ context.Context, bucketName string, key string, data []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	bucket, ok := ms.buckets[bucketName]
	if !ok {
		return errs.NewBucketNotFoundError(bucketName)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	bucket[key] = stored
	return nil
}

// Object returns the stored bytes for a key, if present.
func (ms *MemoryObjectStore) Object(bucketName string, key string) ([]byte, bool) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	bucket, ok := ms.buckets[bucketName]
	if !ok {
		return nil, false
	}
	data, ok := bucket[key]
	return data, ok
}

func (ms *MemoryObjectStore) Keys(bucketName string) []string {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	bucket, ok := ms.buckets[bucketName]
	if !ok {
		return nil
	}
	keys := lo.Keys(bucket)
	sort.Strings(keys)
	return keys
}
