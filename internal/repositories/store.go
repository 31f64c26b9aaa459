package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"github.com/sbilibin2017/bizlink/internal/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	UsersCollection         = "users"
	ProfilesCollection      = "profiles"
	BusinessesCollection    = "businesses"
	PaymentsCollection      = "payments"
	TrainingsCollection     = "trainings"
	MessagesCollection      = "messages"
	NotificationsCollection = "notifications"
	ReviewsCollection       = "reviews"
)

// Store bundles the database handle with the identifier codec and the
// per-call timeout shared by all repositories.
type Store struct {
	db      *mongo.Database
	codec   identity.Codec
	timeout time.Duration
}

// NewStore creates a new Store. A zero timeout leaves calls bounded only by the caller's context.
func NewStore(db *mongo.Database, codec identity.Codec, timeout time.Duration) *Store {
	return &Store{
		db:      db,
		codec:   codec,
		timeout: timeout,
	}
}

// Codec returns the identifier codec used for filters.
func (s *Store) Codec() identity.Codec {
	return s.codec
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name, options.Collection().SetRegistry(s.codec.Registry()))
}

// Page selects a window of a list query. A zero Limit returns everything after Skip.
type Page struct {
	Skip  int64
	Limit int64
}

// documents implements the store primitives shared by every entity repository.
type documents[T any] struct {
	coll    *mongo.Collection
	codec   identity.Codec
	timeout time.Duration
}

func newDocuments[T any](s *Store, name string) documents[T] {
	return documents[T]{
		coll:    s.collection(name),
		codec:   s.codec,
		timeout: s.timeout,
	}
}

func (d documents[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}

func (d documents[T]) op(name string) string {
	return d.coll.Name() + "." + name
}

func (d documents[T]) observe(name string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		outcome = "not_found"
	case mongo.IsDuplicateKeyError(err):
		outcome = "duplicate"
	case err != nil:
		outcome = "error"
	}
	metrics.RecordStoreOperation(d.coll.Name(), name, outcome, start)
}

func (d documents[T]) insert(ctx context.Context, doc *T) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := d.coll.InsertOne(ctx, doc)
	d.observe("insertOne", start, err)
	var inserted interface{}
	if res != nil {
		inserted = res.InsertedID
	}

	logger.Log.Infow(
		"query", d.op("insertOne"),
		"result", inserted,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(ErrDuplicateKey, d.coll.Name())
	}
	if err != nil {
		return errors.Wrapf(err, "insert into %s", d.coll.Name())
	}
	return nil
}

func (d documents[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	var doc T
	start := time.Now()
	err := d.coll.FindOne(ctx, filter).Decode(&doc)
	d.observe("findOne", start, err)

	logger.Log.Infow(
		"query", d.op("findOne"),
		"args", filter,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.Wrap(ErrNotFound, d.coll.Name())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", d.coll.Name())
	}
	return &doc, nil
}

func (d documents[T]) find(ctx context.Context, filter bson.M, page Page) ([]T, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	if page.Skip > 0 {
		opts.SetSkip(page.Skip)
	}
	if page.Limit > 0 {
		opts.SetLimit(page.Limit)
	}

	docs := make([]T, 0)
	start := time.Now()
	cur, err := d.coll.Find(ctx, filter, opts)
	if err == nil {
		err = cur.All(ctx, &docs)
	}
	d.observe("find", start, err)

	logger.Log.Infow(
		"query", d.op("find"),
		"args", []any{filter, page.Skip, page.Limit},
		"result", len(docs),
		"error", err,
	)

	if err != nil {
		return nil, errors.Wrapf(err, "find in %s", d.coll.Name())
	}
	return docs, nil
}

func (d documents[T]) updateOne(ctx context.Context, filter, update bson.M) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := d.coll.UpdateOne(ctx, filter, update)
	d.observe("updateOne", start, err)
	var matched int64
	if res != nil {
		matched = res.MatchedCount
	}

	logger.Log.Infow(
		"query", d.op("updateOne"),
		"args", filter,
		"result", matched,
		"error", err,
	)

	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(ErrDuplicateKey, d.coll.Name())
	}
	if err != nil {
		return errors.Wrapf(err, "update %s", d.coll.Name())
	}
	if matched == 0 {
		return errors.Wrap(ErrNotFound, d.coll.Name())
	}
	return nil
}

func (d documents[T]) updateMany(ctx context.Context, filter, update bson.M) (int64, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := d.coll.UpdateMany(ctx, filter, update)
	d.observe("updateMany", start, err)
	var modified int64
	if res != nil {
		modified = res.ModifiedCount
	}

	logger.Log.Infow(
		"query", d.op("updateMany"),
		"args", filter,
		"result", modified,
		"error", err,
	)

	if err != nil {
		return 0, errors.Wrapf(err, "update %s", d.coll.Name())
	}
	return modified, nil
}

func (d documents[T]) deleteOne(ctx context.Context, filter bson.M) error {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := d.coll.DeleteOne(ctx, filter)
	d.observe("deleteOne", start, err)
	var deleted int64
	if res != nil {
		deleted = res.DeletedCount
	}

	logger.Log.Infow(
		"query", d.op("deleteOne"),
		"args", filter,
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return errors.Wrapf(err, "delete from %s", d.coll.Name())
	}
	if deleted == 0 {
		return errors.Wrap(ErrNotFound, d.coll.Name())
	}
	return nil
}

func (d documents[T]) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	n, err := d.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	d.observe("countDocuments", start, err)

	logger.Log.Infow(
		"query", d.op("countDocuments"),
		"args", filter,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, errors.Wrapf(err, "count in %s", d.coll.Name())
	}
	return n > 0, nil
}
