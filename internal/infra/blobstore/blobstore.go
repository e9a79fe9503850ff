// Package blobstore opens gocloud buckets for export destinations.
package blobstore

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Registered URL schemes: file://, mem://, gs:// and s3://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// ErrNoBucket is returned when no bucket URL is configured.
var ErrNoBucket = errors.New("no bucket url configured")

// Open opens the bucket at url. Directories behind file:// URLs are created on demand.
func Open(ctx context.Context, url string) (*blob.Bucket, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoBucket
	}
	if strings.HasPrefix(url, "file://") && !strings.Contains(url, "create_dir") {
		if strings.Contains(url, "?") {
			url += "&create_dir=true"
		} else {
			url += "?create_dir=true"
		}
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return bucket, nil
}
