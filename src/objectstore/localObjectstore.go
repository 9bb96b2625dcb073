// Implementation of the object store backed by the local filesystem: buckets
// are directories under a root dir, objects are files under them.
package objectstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type LocalObjectStore struct {
	rootDir string
}

func NewLocalObjectStore(rootDir string) *LocalObjectStore {
	return &LocalObjectStore{rootDir: rootDir}
}

func (ls *LocalObjectStore) BucketExists(_ context.Context, bucketName string) (bool, error) {
	info, err := os.Stat(filepath.Join(ls.rootDir, bucketName))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (ls *LocalObjectStore) PutObject(_ context.Context, bucketName string, key string, data []byte) error {
	objectPath := filepath.Join(ls.rootDir, bucketName, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(objectPath), 0755); err != nil {
		return fmt.Errorf("create object dir for %q: %w", key, err)
	}
	return os.WriteFile(objectPath, data, 0644)
}
