package main

import (
	"context"
	"os"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

func runExport(ctx context.Context, bucketURL, kindName string) error {
	var exportUC usecase.ExportUsecase

	return withApp(ctx, func() error {
		if kindName != "" {
			kind, ok := entity.ParseKind(kindName)
			if !ok {
				return domainerrors.ErrUnknownKind.WrapMessage(kindName)
			}
			_, err := exportUC.Export(ctx, kind, os.Stdout)

			return err
		}

		files, err := exportUC.ExportAll(ctx, bucketURL)
		if err != nil {
			return err
		}

		return printJSON(files)
	}, &exportUC)
}
