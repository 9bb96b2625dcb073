// Implementation of the object store for when exports land on a real (or
// emulated) S3 endpoint.
package objectstore

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/awslite/tablexport/src/utils/s3"
)

type S3ObjectStore struct{}

func NewS3ObjectStore() *S3ObjectStore {
	return &S3ObjectStore{}
}

func (ss *S3ObjectStore) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return s3.BucketExists(ctx, bucketName)
}

func (ss *S3ObjectStore) PutObject(ctx context.Context, bucketName string, key string, data []byte) error {
	log.Infof("uploading %d bytes to s3://%s/%s", len(data), bucketName, key)
	return s3.PutObject(ctx, bucketName, key, data)
}
