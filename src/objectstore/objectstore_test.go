/*
Copyright (c) YugabyteDB, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package objectstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awslite/tablexport/src/errs"
)

func TestMemoryStoreBucketExists(t *testing.T) {
	store := NewMemoryObjectStore()
	ctx := context.Background()

	exists, err := store.BucketExists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	store.CreateBucket("present")
	exists, err = store.BucketExists(ctx, "present")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStorePutObject(t *testing.T) {
	store := NewMemoryObjectStore()
	ctx := context.Background()

	err := store.PutObject(ctx, "missing", "a/b", []byte("x"))
	require.Error(t, err)
	var notFound *errs.BucketNotFoundError
	assert.True(t, errors.As(err, &notFound))

	store.CreateBucket("b")
	data := []byte("payload")
	require.NoError(t, store.PutObject(ctx, "b", "exports/data.gz", data))

	// The store must hold its own copy of the bytes.
	data[0] = 'X'
	stored, ok := store.Object("b", "exports/data.gz")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), stored)

	assert.Equal(t, []string{"exports/data.gz"}, store.Keys("b"))
	assert.Nil(t, store.Keys("missing"))
}

func TestLocalStore(t *testing.T) {
	rootDir := t.TempDir()
	store := NewLocalObjectStore(rootDir)
	ctx := context.Background()

	exists, err := store.BucketExists(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "backups"), 0755))
	exists, err = store.BucketExists(ctx, "backups")
	require.NoError(t, err)
	assert.True(t, exists)

	key := "exports/AWSDynamoDB/abc/data/def.gz"
	require.NoError(t, store.PutObject(ctx, "backups", key, []byte("blob")))

	written, err := os.ReadFile(filepath.Join(rootDir, "backups", filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("blob"), written)
}

func TestNewDispatchesOnSpec(t *testing.T) {
	assert.IsType(t, &S3ObjectStore{}, New("s3"))
	assert.IsType(t, &S3ObjectStore{}, New("s3://bucket/prefix"))
	assert.IsType(t, &MemoryObjectStore{}, New("mem"))
	assert.IsType(t, &MemoryObjectStore{}, New("memory"))
	assert.IsType(t, &LocalObjectStore{}, New("/tmp/objects"))
}
