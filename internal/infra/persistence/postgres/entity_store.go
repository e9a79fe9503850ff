package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entityStore implements repository.EntityStore with one table per kind.
type entityStore struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	now    func() time.Time
}

// NewEntityStore is the constructor for entityStore.
func NewEntityStore(db *gorm.DB, hasher service.PasswordHasher) repository.EntityStore {
	return &entityStore{
		db:     db,
		hasher: hasher,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// Insert persists rec under a freshly generated time-ordered identifier.
func (s *entityStore) Insert(ctx context.Context, rec entity.Record) (uuid.UUID, error) {
	if err := service.SealPassword(s.hasher, rec); err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "generate id")
	}

	if err := s.checkReferences(ctx, rec.References()); err != nil {
		return uuid.Nil, err
	}

	at := s.now()
	stored := rec.Clone()
	stored.Stamp(id, at)
	row, err := toModel(stored)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return uuid.Nil, translateError(err, "insert "+rec.Kind().String())
	}
	rec.Stamp(id, at)

	return id, nil
}

// Update writes only the named columns of rec.
func (s *entityStore) Update(ctx context.Context, rec entity.Record, fields ...entity.Field) error {
	current, err := s.FindByID(ctx, rec.Kind(), rec.Identity())
	if err != nil {
		return err
	}

	columns := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		if err := entity.CopyField(current, rec, field); err != nil {
			return err
		}
		columns = append(columns, columnFor(field))
	}
	if err := s.checkReferences(ctx, entity.BackReferences(current)); err != nil {
		return err
	}

	current.Touch(s.now())
	row, err := toModel(current)
	if err != nil {
		return err
	}
	columns = append(columns, "updated_at")

	if err := s.db.WithContext(ctx).Model(row).Select(columns).Updates(row).Error; err != nil {
		return translateError(err, "update "+rec.Kind().String())
	}

	return nil
}

// DeleteAll truncates a kind's table row by row so foreign keys are still checked.
func (s *entityStore) DeleteAll(ctx context.Context, kind entity.Kind) (int64, error) {
	row, err := modelFor(kind)
	if err != nil {
		return 0, err
	}

	res := s.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(row)
	if res.Error != nil {
		return 0, translateError(res.Error, "delete "+kind.String())
	}

	return res.RowsAffected, nil
}

// DropConstraint drops a named index or table constraint.
func (s *entityStore) DropConstraint(ctx context.Context, kind entity.Kind, name string) error {
	row, err := modelFor(kind)
	if err != nil {
		return err
	}

	migrator := s.db.WithContext(ctx).Migrator()
	switch {
	case migrator.HasIndex(row, name):
		if err := migrator.DropIndex(row, name); err != nil {
			return translateError(err, "drop index "+name)
		}
	case migrator.HasConstraint(row, name):
		if err := migrator.DropConstraint(row, name); err != nil {
			return translateError(err, "drop constraint "+name)
		}
	default:
		return errors.Wrapf(repository.ErrConstraintNotFound, "%s on %s", name, kind)
	}

	return nil
}

// FindByID implements repository.EntityStore.
func (s *entityStore) FindByID(ctx context.Context, kind entity.Kind, id uuid.UUID) (entity.Record, error) {
	db := s.db.WithContext(ctx).Where("id = ?", id)

	var (
		rec entity.Record
		err error
	)
	switch kind {
	case entity.KindCategory:
		rec, err = findOne(db, toCategory)
	case entity.KindProduct:
		rec, err = findOne(db, toProduct)
	case entity.KindUser:
		rec, err = findOne(db, toUser)
	case entity.KindProfile:
		rec, err = findOne(db, toProfile)
	case entity.KindReview:
		rec, err = findOne(db, toReview)
	case entity.KindOrder:
		rec, err = findOne(db, toOrder)
	case entity.KindOrderItem:
		rec, err = findOne(db, toOrderItem)
	case entity.KindTask:
		rec, err = findOne(db, toTask)
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	if err != nil {
		return nil, translateError(err, "find "+kind.String()+" "+id.String())
	}

	return rec, nil
}

// FindAll returns rows ordered by identifier, which is insertion order for v7 ids.
func (s *entityStore) FindAll(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	db := s.db.WithContext(ctx).Order("id")

	var (
		records []entity.Record
		err     error
	)
	switch kind {
	case entity.KindCategory:
		records, err = findAll(db, toCategory)
	case entity.KindProduct:
		records, err = findAll(db, toProduct)
	case entity.KindUser:
		records, err = findAll(db, toUser)
	case entity.KindProfile:
		records, err = findAll(db, toProfile)
	case entity.KindReview:
		records, err = findAll(db, toReview)
	case entity.KindOrder:
		records, err = findAll(db, toOrder)
	case entity.KindOrderItem:
		records, err = findAll(db, toOrderItem)
	case entity.KindTask:
		records, err = findAll(db, toTask)
	default:
		return nil, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}
	if err != nil {
		return nil, translateError(err, "find all "+kind.String())
	}

	return records, nil
}

// Count implements repository.EntityStore.
func (s *entityStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	row, err := modelFor(kind)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(row).Count(&n).Error; err != nil {
		return 0, translateError(err, "count "+kind.String())
	}

	return n, nil
}

// checkReferences verifies every referenced id exists, including ids held in JSON columns.
func (s *entityStore) checkReferences(ctx context.Context, refs []entity.Reference) error {
	byKind := make(map[entity.Kind][]uuid.UUID)
	for _, ref := range refs {
		byKind[ref.Kind] = append(byKind[ref.Kind], ref.ID)
	}

	existing := make(map[uuid.UUID]struct{}, len(refs))
	for kind, ids := range byKind {
		row, err := modelFor(kind)
		if err != nil {
			return err
		}

		var found []uuid.UUID
		if err := s.db.WithContext(ctx).Model(row).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
			return translateError(err, "check references to "+kind.String())
		}
		for _, id := range found {
			existing[id] = struct{}{}
		}
	}

	for _, ref := range refs {
		if _, ok := existing[ref.ID]; !ok {
			return errors.Wrapf(repository.ErrDanglingReference, "%s -> %s %s", ref.Field, ref.Kind, ref.ID)
		}
	}

	return nil
}

func findOne[M any, R entity.Record](db *gorm.DB, convert func(*M) R) (entity.Record, error) {
	var row M
	if err := db.First(&row).Error; err != nil {
		return nil, err
	}

	return convert(&row), nil
}

func findAll[M any, R entity.Record](db *gorm.DB, convert func(*M) R) ([]entity.Record, error) {
	var rows []*M
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, convert(row))
	}

	return out, nil
}

// Models lists every table the store manages, in dependency order.
func Models() []any {
	return []any{
		&model.CategoryModel{},
		&model.ProductModel{},
		&model.UserModel{},
		&model.ProfileModel{},
		&model.ReviewModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.TaskModel{},
		&model.FixtureRunModel{},
	}
}
