package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ExportHandler serves CSV exports.
type ExportHandler struct {
	exportUC usecase.ExportUsecase
}

// NewExportHandler is the constructor for ExportHandler
func NewExportHandler(exportUC usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{exportUC: exportUC}
}

// ExportAllRequest selects the destination bucket. Empty uses the configured one.
type ExportAllRequest struct {
	BucketURL string `json:"bucketUrl"`
}

// DownloadKind handles GET /export/:kind and streams one kind as CSV.
func (h *ExportHandler) DownloadKind(c echo.Context) error {
	kind, ok := entity.ParseKind(c.Param("kind"))
	if !ok {
		return domainerrors.ErrUnknownKind.WrapMessage(c.Param("kind"))
	}

	// Buffered so a failed export still yields a JSON error instead of a truncated file.
	var buf bytes.Buffer
	if _, err := h.exportUC.Export(c.Request().Context(), kind, &buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", kind.String()+".csv"))

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportAll handles POST /admin/exports and writes every kind to a bucket.
func (h *ExportHandler) ExportAll(c echo.Context) error {
	var req ExportAllRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid export request")
		}
	}

	files, err := h.exportUC.ExportAll(c.Request().Context(), req.BucketURL)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, files)
}
