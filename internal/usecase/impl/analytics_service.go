package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	bestSellerLimit  = 5
	recentUsersLimit = 10
)

// analyticsService implements the AnalyticsUsecase interface over the entity store.
type analyticsService struct {
	store  repository.EntityStore
	logger *slog.Logger
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	Store  repository.EntityStore
	Logger *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		store:  params.Store,
		logger: params.Logger,
	}
}

// GlobalStats implements usecase.AnalyticsUsecase.
func (srv *analyticsService) GlobalStats(ctx context.Context) (*usecase.GlobalStats, error) {
	totalUsers, err := srv.store.Count(ctx, entity.KindUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	totalProducts, err := srv.store.Count(ctx, entity.KindProduct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}
	orders, err := repository.FindAllAs[*entity.Order](ctx, srv.store, entity.KindOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}
	reviews, err := repository.FindAllAs[*entity.Review](ctx, srv.store, entity.KindReview)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reviews")
	}
	bestSellers, err := srv.bestSellers(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(order.TotalPrice)
	}

	var rating float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		rating = round2(float64(sum) / float64(len(reviews)))
	}

	var conversion float64
	if totalUsers > 0 {
		conversion = round2(float64(len(distinctBuyers(orders))) / float64(totalUsers) * 100)
	}

	srv.logger.DebugContext(ctx, "Computed global stats",
		slog.Int64("users", totalUsers),
		slog.Int("orders", len(orders)),
		slog.String("revenue", revenue.StringFixed(2)),
	)

	return &usecase.GlobalStats{
		TotalUsers:     totalUsers,
		TotalOrders:    int64(len(orders)),
		TotalRevenue:   revenue.Round(2),
		TotalProducts:  totalProducts,
		AverageRating:  rating,
		ConversionRate: conversion,
		BestSellers:    bestSellers,
	}, nil
}

func (srv *analyticsService) bestSellers(ctx context.Context) ([]usecase.BestSeller, error) {
	items, err := repository.FindAllAs[*entity.OrderItem](ctx, srv.store, entity.KindOrderItem)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}
	products, err := repository.FindAllAs[*entity.Product](ctx, srv.store, entity.KindProduct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	names := make(map[uuid.UUID]string, len(products))
	for _, product := range products {
		names[product.ID] = product.Name
	}

	byProduct := make(map[uuid.UUID]*usecase.BestSeller)
	for _, item := range items {
		seller, ok := byProduct[item.ProductID]
		if !ok {
			seller = &usecase.BestSeller{ProductID: item.ProductID, Name: names[item.ProductID], Revenue: decimal.Zero}
			byProduct[item.ProductID] = seller
		}
		seller.Quantity += item.Quantity
		seller.Revenue = seller.Revenue.Add(item.Subtotal())
	}

	out := make([]usecase.BestSeller, 0, len(byProduct))
	for _, seller := range byProduct {
		out = append(out, *seller)
	}
	slices.SortFunc(out, func(a, b usecase.BestSeller) int {
		if c := cmp.Compare(b.Quantity, a.Quantity); c != 0 {
			return c
		}
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})
	if len(out) > bestSellerLimit {
		out = out[:bestSellerLimit]
	}

	return out, nil
}

// MonthlyStats implements usecase.AnalyticsUsecase.
func (srv *analyticsService) MonthlyStats(ctx context.Context) ([]usecase.MonthlyStat, error) {
	orders, err := repository.FindAllAs[*entity.Order](ctx, srv.store, entity.KindOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	type month struct {
		year  int
		month time.Month
	}
	buckets := make(map[month]*usecase.MonthlyStat)
	for _, order := range orders {
		created := order.CreatedAt.UTC()
		key := month{created.Year(), created.Month()}
		stat, ok := buckets[key]
		if !ok {
			stat = &usecase.MonthlyStat{Year: key.year, Month: key.month, Revenue: decimal.Zero}
			buckets[key] = stat
		}
		stat.Orders++
		stat.Revenue = stat.Revenue.Add(order.TotalPrice)
	}

	out := make([]usecase.MonthlyStat, 0, len(buckets))
	for _, stat := range buckets {
		out = append(out, *stat)
	}
	slices.SortFunc(out, func(a, b usecase.MonthlyStat) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}

		return cmp.Compare(a.Month, b.Month)
	})

	return out, nil
}

// CategoryStats implements usecase.AnalyticsUsecase.
// A product listed under several categories counts toward each of them.
func (srv *analyticsService) CategoryStats(ctx context.Context) ([]usecase.CategoryStat, error) {
	categories, err := repository.FindAllAs[*entity.Category](ctx, srv.store, entity.KindCategory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}
	products, err := repository.FindAllAs[*entity.Product](ctx, srv.store, entity.KindProduct)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	stats := make(map[uuid.UUID]*usecase.CategoryStat)
	for _, product := range products {
		for _, categoryID := range product.CategoryIDs {
			stat, ok := stats[categoryID]
			if !ok {
				stat = &usecase.CategoryStat{
					CategoryID: categoryID,
					Name:       names[categoryID],
					MinPrice:   product.Price,
					MaxPrice:   product.Price,
				}
				stats[categoryID] = stat
			}
			stat.ProductCount++
			stat.MinPrice = decimal.Min(stat.MinPrice, product.Price)
			stat.MaxPrice = decimal.Max(stat.MaxPrice, product.Price)
			sums[categoryID] = sums[categoryID].Add(product.Price)
		}
	}

	out := make([]usecase.CategoryStat, 0, len(stats))
	for id, stat := range stats {
		stat.AveragePrice = sums[id].Div(decimal.NewFromInt(int64(stat.ProductCount))).Round(2)
		out = append(out, *stat)
	}
	slices.SortFunc(out, func(a, b usecase.CategoryStat) int {
		if c := cmp.Compare(b.ProductCount, a.ProductCount); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out, nil
}

// UserStats implements usecase.AnalyticsUsecase.
func (srv *analyticsService) UserStats(ctx context.Context) (*usecase.UserStats, error) {
	users, err := repository.FindAllAs[*entity.User](ctx, srv.store, entity.KindUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}
	orders, err := repository.FindAllAs[*entity.Order](ctx, srv.store, entity.KindOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	var withProfile int64
	for _, user := range users {
		if user.ProfileID != nil {
			withProfile++
		}
	}

	recent := slices.Clone(users)
	slices.SortStableFunc(recent, func(a, b *entity.User) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(recent) > recentUsersLimit {
		recent = recent[:recentUsersLimit]
	}
	recentUsers := make([]usecase.RecentUser, 0, len(recent))
	for _, user := range recent {
		recentUsers = append(recentUsers, usecase.RecentUser{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}

	return &usecase.UserStats{
		TotalUsers:       int64(len(users)),
		ActiveUsers:      distinctBuyers(orders),
		UsersWithProfile: withProfile,
		RecentUsers:      recentUsers,
	}, nil
}

// distinctBuyers lists the users with at least one order, in order of first purchase.
func distinctBuyers(orders []*entity.Order) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0)
	for _, order := range orders {
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		out = append(out, order.UserID)
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
