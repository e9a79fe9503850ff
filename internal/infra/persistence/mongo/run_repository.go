package mongo

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const runCollection = "fixture_runs"

type runRepository struct {
	coll *mongo.Collection
}

// NewRunRepository is the constructor for the run ledger collection.
func NewRunRepository(db *mongo.Database) repository.RunRepository {
	return &runRepository{coll: db.Collection(runCollection)}
}

func (r *runRepository) Create(ctx context.Context, run *entity.Run) error {
	if _, err := r.coll.InsertOne(ctx, toRunDoc(run)); err != nil {
		return translateError(err, "create run")
	}

	return nil
}

func (r *runRepository) Update(ctx context.Context, run *entity.Run) error {
	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: run.ID.String()}}, toRunDoc(run))
	if err != nil {
		return translateError(err, "update run")
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(repository.ErrRecordNotFound, "run %s", run.ID)
	}

	return nil
}

func (r *runRepository) Latest(ctx context.Context) (*entity.Run, error) {
	return r.latest(ctx, bson.D{})
}

func (r *runRepository) LatestSucceeded(ctx context.Context) (*entity.Run, error) {
	return r.latest(ctx, bson.D{{Key: "status", Value: string(entity.RunStatusDone)}})
}

func (r *runRepository) latest(ctx context.Context, filter bson.D) (*entity.Run, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "startedAt", Value: -1}, {Key: "_id", Value: -1}})

	var doc runDoc
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return nil, translateError(err, "find latest run")
	}

	return fromRunDoc(&doc)
}
