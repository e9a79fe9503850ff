package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/blobstore"
	"storefront/internal/infra/export"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	store     repository.EntityStore
	bucketURL string
	logger    *slog.Logger
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	Store  repository.EntityStore
	Config *config.Config
	Logger *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	var bucketURL string
	if params.Config != nil && params.Config.Export != nil {
		bucketURL = params.Config.Export.BucketURL
	}

	return &exportService{
		store:     params.Store,
		bucketURL: bucketURL,
		logger:    params.Logger,
	}
}

// Export implements usecase.ExportUsecase.
func (srv *exportService) Export(ctx context.Context, kind entity.Kind, w io.Writer) (int, error) {
	schema, ok := export.SchemaFor(kind)
	if !ok {
		return 0, domainerrors.ErrUnknownKind.WrapMessage(kind.String())
	}

	records, err := srv.store.FindAll(ctx, kind)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to load %s", kind)
	}

	rows, err := export.Write(w, schema, records)
	if err != nil {
		return rows, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return rows, nil
}

// ExportAll implements usecase.ExportUsecase.
func (srv *exportService) ExportAll(ctx context.Context, bucketURL string) ([]usecase.ExportedFile, error) {
	if bucketURL == "" {
		bucketURL = srv.bucketURL
	}
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	bucket, err := blobstore.Open(ctx, bucketURL)
	if err != nil {
		return nil, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}
	defer func() {
		if closeErr := bucket.Close(); closeErr != nil {
			logger.Warn("Failed to close export bucket", slog.Any("error", closeErr))
		}
	}()

	files := make([]usecase.ExportedFile, 0, len(export.Schemas()))
	for _, schema := range export.Schemas() {
		file, err := srv.exportTo(ctx, logger, bucket, schema)
		if err != nil {
			return files, err
		}
		files = append(files, file)
	}

	logger.Info("Export completed", slog.String("bucket", bucketURL), slog.Int("files", len(files)))

	return files, nil
}

func (srv *exportService) exportTo(ctx context.Context, logger *slog.Logger, bucket *blob.Bucket, schema export.Schema) (usecase.ExportedFile, error) {
	var buf bytes.Buffer
	rows, err := srv.Export(ctx, schema.Kind, &buf)
	if err != nil {
		return usecase.ExportedFile{}, err
	}

	checksum, err := util.Checksum(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return usecase.ExportedFile{}, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	key := schema.Key()
	if err := bucket.WriteAll(ctx, key, buf.Bytes(), &blob.WriterOptions{ContentType: "text/csv"}); err != nil {
		return usecase.ExportedFile{}, domainerrors.ErrExportFailed.WrapMessage(errors.Wrapf(err, "write %s", key).Error())
	}

	logger.Info("Exported kind",
		slog.String("kind", schema.Kind.String()),
		slog.String("key", key),
		slog.Int("rows", rows),
		slog.String("size", util.FormatBytes(int64(buf.Len()))),
		slog.String("sha256", checksum),
	)

	return usecase.ExportedFile{Kind: schema.Kind, Key: key, Rows: rows}, nil
}
