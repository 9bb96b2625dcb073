package objectstore

import (
	"context"
	"strings"
)

// ObjectStore is the destination surface an export needs: a bucket existence
// probe and a single-shot object write.
type ObjectStore interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	PutObject(ctx context.Context, bucketName string, key string, data []byte) error
}

// New dispatches on the store spec: "s3" targets real (or emulated) S3,
// "mem" an in-process store, anything else is treated as a local root directory.
func New(spec string) ObjectStore {
	switch {
	case spec == "s3" || strings.HasPrefix(spec, "s3://"):
		return NewS3ObjectStore()
	case spec == "mem" || spec == "memory":
		return NewMemoryObjectStore()
	default:
		return NewLocalObjectStore(spec)
	}
}
