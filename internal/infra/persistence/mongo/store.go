// Package mongo contains a document-store implementation of the persistence layer.
package mongo

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server error codes returned when dropping an index that is not there.
const (
	codeNamespaceNotFound = 26
	codeIndexNotFound     = 27
)

// entityStore implements repository.EntityStore with one collection per kind.
type entityStore struct {
	db      *mongo.Database
	session mongo.Session
	hasher  service.PasswordHasher
	now     func() time.Time
}

// NewEntityStore is the constructor for entityStore.
func NewEntityStore(db *mongo.Database, hasher service.PasswordHasher) repository.EntityStore {
	return newEntityStore(db, nil, hasher)
}

func newEntityStore(db *mongo.Database, session mongo.Session, hasher service.PasswordHasher) *entityStore {
	return &entityStore{
		db:      db,
		session: session,
		hasher:  hasher,
		// BSON dates carry millisecond precision.
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// bind attaches the store's session, if any, to ctx.
func (s *entityStore) bind(ctx context.Context) context.Context {
	if s.session == nil {
		return ctx
	}

	return mongo.NewSessionContext(ctx, s.session)
}

func (s *entityStore) collection(kind entity.Kind) *mongo.Collection {
	return s.db.Collection(kind.String())
}

// Insert implements repository.EntityStore.
func (s *entityStore) Insert(ctx context.Context, rec entity.Record) (uuid.UUID, error) {
	ctx = s.bind(ctx)

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
	doc, err := toDocument(stored)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := s.collection(rec.Kind()).InsertOne(ctx, doc); err != nil {
		return uuid.Nil, translateError(err, "insert "+rec.Kind().String())
	}
	rec.Stamp(id, at)

	return id, nil
}

// Update sets only the named fields; document keys equal the field names.
func (s *entityStore) Update(ctx context.Context, rec entity.Record, fields ...entity.Field) error {
	ctx = s.bind(ctx)

	current, err := s.FindByID(ctx, rec.Kind(), rec.Identity())
	if err != nil {
		return err
	}
	for _, field := range fields {
		if err := entity.CopyField(current, rec, field); err != nil {
			return err
		}
	}
	if err := s.checkReferences(ctx, entity.BackReferences(current)); err != nil {
		return err
	}
	current.Touch(s.now())

	doc, err := toDocument(current)
	if err != nil {
		return err
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}
	var full bson.M
	if err := bson.Unmarshal(raw, &full); err != nil {
		return errors.Wrap(err, "unmarshal document")
	}

	set := bson.D{{Key: "updatedAt", Value: full["updatedAt"]}}
	for _, field := range fields {
		set = append(set, bson.E{Key: string(field), Value: full[string(field)]})
	}

	res, err := s.collection(rec.Kind()).UpdateByID(ctx, rec.Identity().String(), bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return translateError(err, "update "+rec.Kind().String())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(repository.ErrRecordNotFound, "%s %s", rec.Kind(), rec.Identity())
	}

	return nil
}

// DeleteAll implements repository.EntityStore.
func (s *entityStore) DeleteAll(ctx context.Context, kind entity.Kind) (int64, error) {
	if !kind.IsValid() {
		return 0, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}

	res, err := s.collection(kind).DeleteMany(s.bind(ctx), bson.D{})
	if err != nil {
		return 0, translateError(err, "delete "+kind.String())
	}

	return res.DeletedCount, nil
}

// DropConstraint drops a named index from the kind's collection.
func (s *entityStore) DropConstraint(ctx context.Context, kind entity.Kind, name string) error {
	if !kind.IsValid() {
		return errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}

	if _, err := s.collection(kind).Indexes().DropOne(s.bind(ctx), name); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && (cmdErr.Code == codeIndexNotFound || cmdErr.Code == codeNamespaceNotFound) {
			return errors.Wrapf(repository.ErrConstraintNotFound, "%s on %s", name, kind)
		}

		return translateError(err, "drop index "+name)
	}

	return nil
}

// FindByID implements repository.EntityStore.
func (s *entityStore) FindByID(ctx context.Context, kind entity.Kind, id uuid.UUID) (entity.Record, error) {
	doc, err := newDocument(kind)
	if err != nil {
		return nil, err
	}

	if err := s.collection(kind).FindOne(s.bind(ctx), bson.D{{Key: "_id", Value: id.String()}}).Decode(doc); err != nil {
		return nil, translateError(err, "find "+kind.String()+" "+id.String())
	}

	return fromDocument(doc)
}

// FindAll returns documents sorted by identifier, which is insertion order for v7 ids.
func (s *entityStore) FindAll(ctx context.Context, kind entity.Kind) ([]entity.Record, error) {
	if _, err := newDocument(kind); err != nil {
		return nil, err
	}
	ctx = s.bind(ctx)

	cursor, err := s.collection(kind).Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, translateError(err, "find all "+kind.String())
	}
	defer cursor.Close(ctx)

	var out []entity.Record
	for cursor.Next(ctx) {
		doc, _ := newDocument(kind)
		if err := cursor.Decode(doc); err != nil {
			return nil, errors.Wrapf(err, "decode %s", kind)
		}
		rec, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, translateError(err, "iterate "+kind.String())
	}

	return out, nil
}

// Count implements repository.EntityStore.
func (s *entityStore) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	if !kind.IsValid() {
		return 0, errors.Wrapf(repository.ErrUnknownKind, "%s", kind)
	}

	n, err := s.collection(kind).CountDocuments(s.bind(ctx), bson.D{})
	if err != nil {
		return 0, translateError(err, "count "+kind.String())
	}

	return n, nil
}

func (s *entityStore) checkReferences(ctx context.Context, refs []entity.Reference) error {
	byKind := make(map[entity.Kind][]string)
	for _, ref := range refs {
		byKind[ref.Kind] = append(byKind[ref.Kind], ref.ID.String())
	}

	existing := make(map[string]struct{}, len(refs))
	for kind, ids := range byKind {
		found, err := s.collection(kind).Distinct(ctx, "_id", bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
		if err != nil {
			return translateError(err, "check references to "+kind.String())
		}
		for _, v := range found {
			if id, ok := v.(string); ok {
				existing[id] = struct{}{}
			}
		}
	}

	for _, ref := range refs {
		if _, ok := existing[ref.ID.String()]; !ok {
			return errors.Wrapf(repository.ErrDanglingReference, "%s -> %s %s", ref.Field, ref.Kind, ref.ID)
		}
	}

	return nil
}

func translateError(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return errors.Wrap(repository.ErrRecordNotFound, op)
	case mongo.IsDuplicateKeyError(err):
		return errors.Wrapf(repository.ErrDuplicateKey, "%s: %v", op, err)
	default:
		return errors.Wrap(err, op)
	}
}

// EnsureIndexes creates the unique indexes the relational store declares in its schema.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []struct {
		kind entity.Kind
		name string
		key  string
	}{
		{kind: entity.KindCategory, name: "idx_categories_name", key: "name"},
		{kind: entity.KindUser, name: "idx_users_email", key: "email"},
		{kind: entity.KindUser, name: "idx_users_username", key: "username"},
		{kind: entity.KindProfile, name: "idx_profiles_user_id", key: "user"},
	}

	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.key, Value: 1}},
			Options: options.Index().SetName(idx.name).SetUnique(true),
		}
		if _, err := db.Collection(idx.kind.String()).Indexes().CreateOne(ctx, model); err != nil {
			return errors.Wrapf(err, "create index %s", idx.name)
		}
	}

	return nil
}
