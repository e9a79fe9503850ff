package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FixtureHandlerParams holds dependencies for FixtureHandler, injected by Fx.
type FixtureHandlerParams struct {
	fx.In

	FixtureUC usecase.FixtureUsecase
	Logger    *slog.Logger
}

// FixtureHandler exposes the fixture generator and its run ledger to administrators.
type FixtureHandler struct {
	fixtureUC usecase.FixtureUsecase
	logger    *slog.Logger
}

// NewFixtureHandler is the constructor for FixtureHandler
func NewFixtureHandler(params FixtureHandlerParams) *FixtureHandler {
	return &FixtureHandler{
		fixtureUC: params.FixtureUC,
		logger:    params.Logger,
	}
}

// GenerateRunRequest overrides the configured seed settings for one run.
type GenerateRunRequest struct {
	Seed    uint64 `json:"seed"`
	Workers int    `json:"workers" validate:"gte=0,lte=64"`
	Atomic  bool   `json:"atomic"`
}

// GenerateRun rebuilds the dataset and returns the run report.
func (h *FixtureHandler) GenerateRun(c echo.Context) error {
	var req GenerateRunRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid run options")
		}
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), err.Error())
	}

	report, err := h.fixtureUC.Generate(c.Request().Context(), usecase.GenerateOptions{
		Seed:    req.Seed,
		Workers: req.Workers,
		Atomic:  req.Atomic,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, report)
}

// ResetData clears every generated record.
func (h *FixtureHandler) ResetData(c echo.Context) error {
	report, err := h.fixtureUC.Reset(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, report)
}

// GetLatestRun returns the most recent ledger entry.
func (h *FixtureHandler) GetLatestRun(c echo.Context) error {
	run, err := h.fixtureUC.LatestRun(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, run)
}

// GetCurrentRun returns the run that produced the current dataset.
func (h *FixtureHandler) GetCurrentRun(c echo.Context) error {
	run, err := h.fixtureUC.CurrentRun(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, run)
}
