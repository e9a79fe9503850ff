package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// ExportedFile describes one CSV object written to a bucket.
type ExportedFile struct {
	Kind entity.Kind `json:"kind"`
	Key  string      `json:"key"`
	Rows int         `json:"rows"`
}

// ExportUsecase renders the dataset as flat CSV tables.
type ExportUsecase interface {
	// Export writes one kind as CSV to w and returns the number of data rows.
	Export(ctx context.Context, kind entity.Kind, w io.Writer) (int, error)

	// ExportAll writes <kind>.csv for every kind to the bucket at bucketURL.
	// An empty bucketURL uses the configured bucket.
	ExportAll(ctx context.Context, bucketURL string) ([]ExportedFile, error)
}
