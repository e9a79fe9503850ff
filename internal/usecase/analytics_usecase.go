package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BestSeller is a product ranked by units sold.
type BestSeller struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"totalQuantity"`
	Revenue   decimal.Decimal `json:"totalRevenue"`
}

// GlobalStats summarizes the whole dataset.
type GlobalStats struct {
	TotalUsers     int64           `json:"totalUsers"`
	TotalOrders    int64           `json:"totalOrders"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalProducts  int64           `json:"totalProducts"`
	AverageRating  float64         `json:"averageRating"`
	ConversionRate float64         `json:"conversionRate"`
	BestSellers    []BestSeller    `json:"bestSellers"`
}

// MonthlyStat aggregates orders created in one calendar month.
type MonthlyStat struct {
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Orders  int64           `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

// CategoryStat aggregates the products listed under one category.
type CategoryStat struct {
	CategoryID   uuid.UUID       `json:"categoryId"`
	Name         string          `json:"name"`
	ProductCount int             `json:"productCount"`
	AveragePrice decimal.Decimal `json:"avgPrice"`
	MinPrice     decimal.Decimal `json:"minPrice"`
	MaxPrice     decimal.Decimal `json:"maxPrice"`
}

// RecentUser is a trimmed user view.
type RecentUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStats summarizes user activity.
type UserStats struct {
	TotalUsers       int64        `json:"totalUsers"`
	ActiveUsers      []uuid.UUID  `json:"activeUsers"`
	UsersWithProfile int64        `json:"usersWithProfile"`
	RecentUsers      []RecentUser `json:"recentUsers"`
}

// AnalyticsUsecase computes read-only rollups over the current dataset.
type AnalyticsUsecase interface {
	GlobalStats(ctx context.Context) (*GlobalStats, error)
	MonthlyStats(ctx context.Context) ([]MonthlyStat, error)
	CategoryStats(ctx context.Context) ([]CategoryStat, error)
	UserStats(ctx context.Context) (*UserStats, error)
}
