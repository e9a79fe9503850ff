package handler

import (
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves read-only rollups of the dataset.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// GetGlobalStats handles GET /analytics/global-stats
func (h *AnalyticsHandler) GetGlobalStats(c echo.Context) error {
	stats, err := h.analyticsUC.GlobalStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetMonthlyStats handles GET /analytics/monthly-stats
func (h *AnalyticsHandler) GetMonthlyStats(c echo.Context) error {
	stats, err := h.analyticsUC.MonthlyStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetCategoryStats handles GET /analytics/category-stats
func (h *AnalyticsHandler) GetCategoryStats(c echo.Context) error {
	stats, err := h.analyticsUC.CategoryStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetUserStats handles GET /analytics/user-stats
func (h *AnalyticsHandler) GetUserStats(c echo.Context) error {
	stats, err := h.analyticsUC.UserStats(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}
