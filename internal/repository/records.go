package repository

import (
	"context"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jdelacruz-io/campus-records/internal/common"
	"github.com/jdelacruz-io/campus-records/internal/entity"
)

// RecordRepository is the storage sink the pipeline hands records to.
type RecordRepository interface {
	// Store persists a record into its collection. Records with a content
	// hash upsert on it, so re-ingesting the same file never duplicates.
	Store(ctx context.Context, rec *entity.Record) error
	// CountByCollection returns stored record counts for the summary export.
	CountByCollection(ctx context.Context) (map[string]int64, error)
}

// MongoRecordRepository stores records in MongoDB, one collection per
// document kind.
type MongoRecordRepository struct {
	db     *mongo.Database
	logger *slog.Logger
}

func NewMongoRecordRepository(db *mongo.Database, logger *slog.Logger) *MongoRecordRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &MongoRecordRepository{db: db, logger: logger}
}

func (r *MongoRecordRepository) Store(ctx context.Context, rec *entity.Record) error {
	coll := r.db.Collection(rec.Collection)

	if rec.ContentHash != "" {
		filter := bson.D{{Key: "content_hash", Value: rec.ContentHash}}
		res, err := coll.ReplaceOne(ctx, filter, rec, options.Replace().SetUpsert(true))
		if err != nil {
			return common.WrapError(err, "replace record")
		}
		r.logger.Debug("record stored",
			"collection", rec.Collection, "id", rec.ID,
			"matched", res.MatchedCount, "upserted", res.UpsertedCount)
		return nil
	}

	_, err := coll.InsertOne(ctx, rec)
	if err != nil {
		return common.WrapError(err, "insert record")
	}
	r.logger.Debug("record stored", "collection", rec.Collection, "id", rec.ID)
	return nil
}

func (r *MongoRecordRepository) CountByCollection(ctx context.Context) (map[string]int64, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(names))
	for _, name := range names {
		n, err := r.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}

// MemoryRecordRepository keeps records in memory. Used by tests and the
// batch tool's dry-run mode.
type MemoryRecordRepository struct {
	mu      sync.Mutex
	records map[string][]*entity.Record
	byHash  map[string]int
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{
		records: make(map[string][]*entity.Record),
		byHash:  make(map[string]int),
	}
}

func (r *MemoryRecordRepository) Store(_ context.Context, rec *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ContentHash != "" {
		key := rec.Collection + "|" + rec.ContentHash
		if i, ok := r.byHash[key]; ok {
			r.records[rec.Collection][i] = rec
			return nil
		}
		r.byHash[key] = len(r.records[rec.Collection])
	}
	r.records[rec.Collection] = append(r.records[rec.Collection], rec)
	return nil
}

func (r *MemoryRecordRepository) CountByCollection(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.records))
	for name, recs := range r.records {
		out[name] = int64(len(recs))
	}
	return out, nil
}

// All returns stored records for a collection (test helper).
func (r *MemoryRecordRepository) All(collection string) []*entity.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Record(nil), r.records[collection]...)
}
