package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// runRepository implements repository.RunRepository on the fixture_runs table.
type runRepository struct {
	db *gorm.DB
}

// NewRunRepository is the constructor for runRepository.
func NewRunRepository(db *gorm.DB) repository.RunRepository {
	return &runRepository{db: db}
}

func (r *runRepository) Create(ctx context.Context, run *entity.Run) error {
	if err := r.db.WithContext(ctx).Create(fromRun(run)).Error; err != nil {
		return translateError(err, "create run")
	}

	return nil
}

func (r *runRepository) Update(ctx context.Context, run *entity.Run) error {
	res := r.db.WithContext(ctx).Select("*").Updates(fromRun(run))
	if res.Error != nil {
		return translateError(res.Error, "update run")
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "update run "+run.ID.String())
	}

	return nil
}

func (r *runRepository) Latest(ctx context.Context) (*entity.Run, error) {
	return r.latest(r.db.WithContext(ctx))
}

func (r *runRepository) LatestSucceeded(ctx context.Context) (*entity.Run, error) {
	return r.latest(r.db.WithContext(ctx).Where("status = ?", string(entity.RunStatusDone)))
}

func (r *runRepository) latest(db *gorm.DB) (*entity.Run, error) {
	var row model.FixtureRunModel
	if err := db.Order("started_at DESC").Order("id DESC").First(&row).Error; err != nil {
		return nil, translateError(err, "find latest run")
	}

	return toRun(&row), nil
}
