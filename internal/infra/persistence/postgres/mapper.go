package postgres

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// modelFor returns a zero persistence model for kind.
func modelFor(kind entity.Kind) (any, error) {
	switch kind {
	case entity.KindCategory:
		return &model.CategoryModel{}, nil
	case entity.KindProduct:
		return &model.ProductModel{}, nil
	case entity.KindUser:
		return &model.UserModel{}, nil
	case entity.KindProfile:
		return &model.ProfileModel{}, nil
	case entity.KindReview:
		return &model.ReviewModel{}, nil
	case entity.KindOrder:
		return &model.OrderModel{}, nil
	case entity.KindOrderItem:
		return &model.OrderItemModel{}, nil
	case entity.KindTask:
		return &model.TaskModel{}, nil
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
}

// columnFor maps an updatable field onto its column.
func columnFor(field entity.Field) string {
	switch field {
	case entity.FieldProfile:
		return "profile_id"
	case entity.FieldOrders:
		return "order_ids"
	case entity.FieldReviews:
		return "review_ids"
	case entity.FieldItems:
		return "item_ids"
	case entity.FieldTotalPrice:
		return "total_price"
	default:
		return ""
	}
}

func toModel(rec entity.Record) (any, error) {
	switch r := rec.(type) {
	case *entity.Category:
		return &model.CategoryModel{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}, nil
	case *entity.Product:
		return &model.ProductModel{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Price:       r.Price,
			Stock:       r.Stock,
			Brand:       r.Brand,
			Rating:      r.Rating,
			ImageURL:    r.ImageURL,
			CategoryIDs: idSlice(r.CategoryIDs),
			ReviewIDs:   idSlice(r.ReviewIDs),
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}, nil
	case *entity.User:
		return &model.UserModel{
			ID:           r.ID,
			Username:     r.Username,
			Email:        r.Email,
			PasswordHash: r.PasswordHash,
			Phone:        r.Phone,
			Address:      r.Address,
			Role:         string(r.Role),
			ProfileID:    r.ProfileID,
			OrderIDs:     idSlice(r.OrderIDs),
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		}, nil
	case *entity.Profile:
		return &model.ProfileModel{
			ID:            r.ID,
			UserID:        r.UserID,
			FirstName:     r.FirstName,
			LastName:      r.LastName,
			DateOfBirth:   r.DateOfBirth,
			Gender:        r.Gender,
			LoyaltyPoints: r.LoyaltyPoints,
			Preferences: datatypes.NewJSONType(model.ProfilePreferences{
				SkinType:           r.Preferences.SkinType,
				Concerns:           r.Preferences.Concerns,
				FavoriteCategories: r.Preferences.FavoriteCategories,
			}),
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}, nil
	case *entity.Review:
		return &model.ReviewModel{
			ID:        r.ID,
			UserID:    r.UserID,
			ProductID: r.ProductID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}, nil
	case *entity.Order:
		return &model.OrderModel{
			ID:              r.ID,
			UserID:          r.UserID,
			ItemIDs:         idSlice(r.ItemIDs),
			TotalPrice:      r.TotalPrice,
			Status:          r.Status,
			ShippingAddress: r.ShippingAddress,
			PaymentMethod:   r.PaymentMethod,
			IsPaid:          r.IsPaid,
			CreatedAt:       r.CreatedAt,
			UpdatedAt:       r.UpdatedAt,
		}, nil
	case *entity.OrderItem:
		return &model.OrderItemModel{
			ID:        r.ID,
			OrderID:   r.OrderID,
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Price:     r.Price,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		}, nil
	case *entity.Task:
		return &model.TaskModel{
			ID:          r.ID,
			UserID:      r.UserID,
			Title:       r.Title,
			Description: r.Description,
			Category:    r.Category,
			Type:        r.Type,
			Rewards: model.TaskRewardsModel{
				Points:         r.Rewards.Points,
				DiscountPoints: r.Rewards.DiscountPoints,
			},
			Status:      r.Status,
			CompletedAt: r.CompletedAt,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}, nil
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%T", rec)
	}
}

func toCategory(m *model.CategoryModel) *entity.Category {
	return &entity.Category{
		Base:        base(m.ID, m.CreatedAt, m.UpdatedAt),
		Name:        m.Name,
		Description: m.Description,
	}
}

func toProduct(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		Base:        base(m.ID, m.CreatedAt, m.UpdatedAt),
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Stock:       m.Stock,
		Brand:       m.Brand,
		Rating:      m.Rating,
		ImageURL:    m.ImageURL,
		CategoryIDs: []uuid.UUID(m.CategoryIDs),
		ReviewIDs:   []uuid.UUID(m.ReviewIDs),
	}
}

func toUser(m *model.UserModel) *entity.User {
	return &entity.User{
		Base:         base(m.ID, m.CreatedAt, m.UpdatedAt),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Phone:        m.Phone,
		Address:      m.Address,
		Role:         entity.Role(m.Role),
		ProfileID:    m.ProfileID,
		OrderIDs:     []uuid.UUID(m.OrderIDs),
	}
}

func toProfile(m *model.ProfileModel) *entity.Profile {
	prefs := m.Preferences.Data()

	return &entity.Profile{
		Base:          base(m.ID, m.CreatedAt, m.UpdatedAt),
		UserID:        m.UserID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		DateOfBirth:   m.DateOfBirth,
		Gender:        m.Gender,
		LoyaltyPoints: m.LoyaltyPoints,
		Preferences: entity.Preferences{
			SkinType:           prefs.SkinType,
			Concerns:           prefs.Concerns,
			FavoriteCategories: prefs.FavoriteCategories,
		},
	}
}

func toReview(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		Base:      base(m.ID, m.CreatedAt, m.UpdatedAt),
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
	}
}

func toOrder(m *model.OrderModel) *entity.Order {
	return &entity.Order{
		Base:            base(m.ID, m.CreatedAt, m.UpdatedAt),
		UserID:          m.UserID,
		ItemIDs:         []uuid.UUID(m.ItemIDs),
		TotalPrice:      m.TotalPrice,
		Status:          m.Status,
		ShippingAddress: m.ShippingAddress,
		PaymentMethod:   m.PaymentMethod,
		IsPaid:          m.IsPaid,
	}
}

func toOrderItem(m *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		Base:      base(m.ID, m.CreatedAt, m.UpdatedAt),
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price,
	}
}

func toTask(m *model.TaskModel) *entity.Task {
	return &entity.Task{
		Base:        base(m.ID, m.CreatedAt, m.UpdatedAt),
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Type:        m.Type,
		Rewards: entity.TaskRewards{
			Points:         m.Rewards.Points,
			DiscountPoints: m.Rewards.DiscountPoints,
		},
		Status:      m.Status,
		CompletedAt: m.CompletedAt,
	}
}

func toRun(m *model.FixtureRunModel) *entity.Run {
	counts := make(map[entity.Kind]int64)
	for kind, n := range m.Counts.Data() {
		counts[entity.Kind(kind)] = n
	}

	return &entity.Run{
		ID:            m.ID,
		Status:        entity.RunStatus(m.Status),
		Stage:         entity.Stage(m.Stage),
		Kind:          entity.Kind(m.Kind),
		LastCommitted: entity.Kind(m.LastCommitted),
		Error:         m.Error,
		Counts:        counts,
		Seed:          uint64(m.Seed),
		StartedAt:     m.StartedAt,
		FinishedAt:    m.FinishedAt,
	}
}

func fromRun(run *entity.Run) *model.FixtureRunModel {
	counts := make(map[string]int64, len(run.Counts))
	for kind, n := range run.Counts {
		counts[string(kind)] = n
	}

	return &model.FixtureRunModel{
		ID:            run.ID,
		Status:        string(run.Status),
		Stage:         string(run.Stage),
		Kind:          string(run.Kind),
		LastCommitted: string(run.LastCommitted),
		Error:         run.Error,
		Counts:        datatypes.NewJSONType(counts),
		Seed:          int64(run.Seed),
		StartedAt:     run.StartedAt,
		FinishedAt:    run.FinishedAt,
	}
}

func base(id uuid.UUID, createdAt, updatedAt time.Time) entity.Base {
	return entity.Base{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt}
}

func idSlice(ids []uuid.UUID) datatypes.JSONSlice[uuid.UUID] {
	if ids == nil {
		return datatypes.JSONSlice[uuid.UUID]{}
	}

	return datatypes.NewJSONSlice(ids)
}
