package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyURL(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNoBucket)
}

func TestOpen_MemoryBucket(t *testing.T) {
	ctx := context.Background()
	bucket, err := Open(ctx, "mem://")
	require.NoError(t, err)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "users.csv", []byte("_id\n"), nil))
	data, err := bucket.ReadAll(ctx, "users.csv")
	require.NoError(t, err)
	assert.Equal(t, "_id\n", string(data))
}

func TestOpen_FileBucketCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "exports")

	bucket, err := Open(ctx, "file://"+dir)
	require.NoError(t, err)
	defer bucket.Close()

	require.NoError(t, bucket.WriteAll(ctx, "tasks.csv", []byte("_id\n"), nil))
	_, err = os.Stat(filepath.Join(dir, "tasks.csv"))
	assert.NoError(t, err)
}

func TestOpen_UnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "ftp://example.com/exports")
	assert.Error(t, err)
}
