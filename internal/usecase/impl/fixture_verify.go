package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/fixture"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// verify reads kind back from the store and checks it against the committed graph.
func (p *pipeline) verify(ctx context.Context, store repository.EntityStore, kind entity.Kind) error {
	started := p.enter(entity.StageVerifying)

	stored, err := store.Count(ctx, kind)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	want, ok := p.generator.Plan().Expected(kind, p.generator.Catalog())
	if !ok {
		want = p.graph.Count(kind)
	}
	if stored != int64(want) {
		return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("%s: stored %d, planned %d", kind, stored, want))
	}

	switch kind {
	case entity.KindProfile:
		err = p.verifyProfiles(ctx, store)
	case entity.KindReview:
		err = p.verifyReviews(ctx, store)
	case entity.KindOrder:
		err = p.verifyOrders(ctx, store)
	case entity.KindOrderItem:
		err = p.verifyItems(ctx, store)
	case entity.KindTask:
		err = p.verifyTasks(ctx, store)
	}
	if err != nil {
		return err
	}

	p.done(started, kind, stored)

	return nil
}

func (p *pipeline) verifyProfiles(ctx context.Context, store repository.EntityStore) error {
	users, err := repository.FindAllAs[*entity.User](ctx, store, entity.KindUser)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	profiles, err := repository.FindAllAs[*entity.Profile](ctx, store, entity.KindProfile)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}

	owner := make(map[uuid.UUID]uuid.UUID, len(profiles))
	for _, profile := range profiles {
		if profile.LoyaltyPoints < fixture.LoyaltyMin || profile.LoyaltyPoints > fixture.LoyaltyMax {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("profile %s: loyalty points %d", profile.ID, profile.LoyaltyPoints))
		}
		owner[profile.ID] = profile.UserID
	}
	for _, user := range users {
		if user.ProfileID == nil {
			return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("user %s has no profile", user.ID))
		}
		if owner[*user.ProfileID] != user.ID {
			return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("user %s points at profile %s of another user", user.ID, *user.ProfileID))
		}
	}

	return nil
}

func (p *pipeline) verifyReviews(ctx context.Context, store repository.EntityStore) error {
	products, err := repository.FindAllAs[*entity.Product](ctx, store, entity.KindProduct)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	reviews, err := repository.FindAllAs[*entity.Review](ctx, store, entity.KindReview)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}

	want := make(map[uuid.UUID]map[uuid.UUID]struct{})
	for _, review := range reviews {
		if review.Rating < fixture.RatingMin || review.Rating > fixture.RatingMax {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("review %s: rating %d", review.ID, review.Rating))
		}
		if want[review.ProductID] == nil {
			want[review.ProductID] = make(map[uuid.UUID]struct{})
		}
		want[review.ProductID][review.ID] = struct{}{}
	}
	for _, product := range products {
		if !sameSet(product.ReviewIDs, want[product.ID]) {
			return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("product %s: %d reviews listed, %d stored", product.ID, len(product.ReviewIDs), len(want[product.ID])))
		}
	}

	return nil
}

func (p *pipeline) verifyOrders(ctx context.Context, store repository.EntityStore) error {
	users, err := repository.FindAllAs[*entity.User](ctx, store, entity.KindUser)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}

	want := make(map[uuid.UUID][]uuid.UUID)
	for _, order := range fixture.Of[*entity.Order](p.graph, entity.KindOrder) {
		want[order.UserID] = append(want[order.UserID], order.ID)
	}
	for _, user := range users {
		if !sameSequence(user.OrderIDs, want[user.ID]) {
			return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("user %s: orders out of sync", user.ID))
		}
	}

	return nil
}

func (p *pipeline) verifyItems(ctx context.Context, store repository.EntityStore) error {
	orders, err := repository.FindAllAs[*entity.Order](ctx, store, entity.KindOrder)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	items, err := repository.FindAllAs[*entity.OrderItem](ctx, store, entity.KindOrderItem)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	products, err := repository.FindAllAs[*entity.Product](ctx, store, entity.KindProduct)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}

	prices := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		prices[product.ID] = product
	}
	byOrder := make(map[uuid.UUID][]*entity.OrderItem)
	for _, item := range items {
		if item.Quantity < fixture.QuantityMin || item.Quantity > fixture.QuantityMax {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("item %s: quantity %d", item.ID, item.Quantity))
		}
		product, ok := prices[item.ProductID]
		if !ok || !product.Price.Equal(item.Price) {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("item %s: price %s differs from its product", item.ID, item.Price))
		}
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	want := make(map[uuid.UUID][]uuid.UUID)
	for _, item := range fixture.Of[*entity.OrderItem](p.graph, entity.KindOrderItem) {
		want[item.OrderID] = append(want[item.OrderID], item.ID)
	}
	for _, order := range orders {
		n := len(byOrder[order.ID])
		if n < fixture.ItemsMin || n > fixture.ItemsMax {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("order %s: %d items", order.ID, n))
		}
		if !sameSequence(order.ItemIDs, want[order.ID]) {
			return p.fail(domainerrors.ErrReconciliationGap, errors.Errorf("order %s: items out of sync", order.ID))
		}
		if total := entity.ItemsTotal(order.ID, byOrder[order.ID]); !total.Equal(order.TotalPrice) {
			p.run.Stage = entity.StageDeriving

			return p.fail(domainerrors.ErrDerivedValueMismatch, errors.Errorf("order %s: total %s, items sum to %s", order.ID, order.TotalPrice, total))
		}
	}

	return nil
}

func (p *pipeline) verifyTasks(ctx context.Context, store repository.EntityStore) error {
	tasks, err := repository.FindAllAs[*entity.Task](ctx, store, entity.KindTask)
	if err != nil {
		return p.fail(domainerrors.ErrInternalError, err)
	}
	for _, task := range tasks {
		if !task.Consistent() {
			return p.fail(domainerrors.ErrInvalidRecord, errors.Errorf("task %s: status %s with completedAt %v", task.ID, task.Status, task.CompletedAt))
		}
	}

	return nil
}

func sameSet(ids []uuid.UUID, want map[uuid.UUID]struct{}) bool {
	if len(ids) != len(want) {
		return false
	}
	for _, id := range ids {
		if _, ok := want[id]; !ok {
			return false
		}
	}

	return true
}

func sameSequence(got, want []uuid.UUID) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}

	return true
}
