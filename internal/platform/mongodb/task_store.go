package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TaskStore implements store.TaskStore on a MongoDB collection.
// Documents are stored flat, exactly as clients send them, with the
// ObjectID in _id.
type TaskStore struct {
	coll *mongo.Collection
}

var _ store.TaskStore = (*TaskStore)(nil)

const listingIndexName = "userEmail_status_id"

// NewTaskStore creates a TaskStore over coll.
func NewTaskStore(coll *mongo.Collection) *TaskStore {
	return &TaskStore{coll: coll}
}

func filterDoc(filter store.TaskFilter) bson.D {
	doc := bson.D{}
	if filter.UserEmail != "" {
		doc = append(doc, bson.E{Key: domain.FieldUserEmail, Value: filter.UserEmail})
	}
	if filter.Status != "" {
		doc = append(doc, bson.E{Key: domain.FieldStatus, Value: string(filter.Status)})
	}
	return doc
}

func keyDoc(key store.TaskKey, op string) (bson.D, error) {
	oid, err := primitive.ObjectIDFromHex(key.ID)
	if err != nil {
		return nil, store.NewStoreError("task", op, "invalid task id", fmt.Errorf("%w: %v", store.ErrMalformedID, err))
	}
	return bson.D{
		{Key: domain.FieldID, Value: oid},
		{Key: domain.FieldUserEmail, Value: key.UserEmail},
	}, nil
}

// EnsureIndexes creates the listing index if it does not exist yet.
func (s *TaskStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: domain.FieldUserEmail, Value: 1},
			{Key: domain.FieldStatus, Value: 1},
			{Key: domain.FieldID, Value: 1},
		},
		Options: options.Index().SetName(listingIndexName),
	})
	if err != nil {
		return store.NewStoreError("task", "create_index", "create listing index failed", MapError(err))
	}
	return nil
}

// Count implements store.TaskStore.
func (s *TaskStore) Count(ctx context.Context, filter store.TaskFilter) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, filterDoc(filter))
	if err != nil {
		logger.FromContext(ctx).Error("failed to count tasks",
			"status", filter.Status,
			"error", err)
		return 0, store.NewStoreError("task", "count", "count documents failed", MapError(err))
	}
	return n, nil
}

// Find implements store.TaskStore. Results are ordered by _id, which for
// ObjectIDs is insertion order.
func (s *TaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	opts store.FindOptions,
) ([]*domain.Task, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: domain.FieldID, Value: 1}})
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if skip := store.ClampSkip(opts.Skip); skip > 0 {
		findOpts.SetSkip(skip)
	}

	cursor, err := s.coll.Find(ctx, filterDoc(filter), findOpts)
	if err != nil {
		logger.FromContext(ctx).Error("failed to find tasks",
			"status", filter.Status,
			"limit", opts.Limit,
			"skip", opts.Skip,
			"error", err)
		return nil, store.NewStoreError("task", "find", "find documents failed", MapError(err))
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("task", "find", "decode documents failed", MapError(err))
	}

	tasks := make([]*domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, taskFromBSON(doc))
	}
	return tasks, nil
}

// InsertOne implements store.TaskStore. The ObjectID is generated client
// side so it can be returned even for unacknowledged writes.
func (s *TaskStore) InsertOne(ctx context.Context, task *domain.Task) (*store.InsertResult, error) {
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "insert", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	oid := primitive.NewObjectID()
	doc := bson.M{}
	for k, v := range task.Document() {
		doc[k] = v
	}
	doc[domain.FieldID] = oid

	acknowledged := true
	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if !errors.Is(err, mongo.ErrUnacknowledgedWrite) {
			logger.FromContext(ctx).Error("failed to insert task", "error", err)
			return nil, store.NewStoreError("task", "insert", "insert document failed", MapError(err))
		}
		acknowledged = false
	}

	task.ID = oid.Hex()
	return &store.InsertResult{Acknowledged: acknowledged, InsertedID: task.ID}, nil
}

// UpdateOne implements store.TaskStore with $set semantics and no upsert.
func (s *TaskStore) UpdateOne(
	ctx context.Context,
	key store.TaskKey,
	fields map[string]any,
) (*store.UpdateResult, error) {
	filter, err := keyDoc(key, "update")
	if err != nil {
		return nil, err
	}

	res, err := s.coll.UpdateOne(ctx, filter,
		bson.M{"$set": fields},
		options.Update().SetUpsert(false),
	)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return &store.UpdateResult{Acknowledged: false}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to update task",
			"task_id", key.ID,
			"error", err)
		return nil, store.NewStoreError("task", "update", "update document failed", MapError(err))
	}

	result := &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := oid.Hex()
		result.UpsertedID = &hex
	}
	return result, nil
}

// DeleteOne implements store.TaskStore.
func (s *TaskStore) DeleteOne(ctx context.Context, key store.TaskKey) (*store.DeleteResult, error) {
	filter, err := keyDoc(key, "delete")
	if err != nil {
		return nil, err
	}

	res, err := s.coll.DeleteOne(ctx, filter)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		return &store.DeleteResult{Acknowledged: false}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete task",
			"task_id", key.ID,
			"error", err)
		return nil, store.NewStoreError("task", "delete", "delete document failed", MapError(err))
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Ping implements store.TaskStore.
func (s *TaskStore) Ping(ctx context.Context) error {
	if err := s.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return store.NewStoreError("task", "ping", "ping failed", MapError(err))
	}
	return nil
}

// Close implements store.TaskStore by disconnecting the client.
func (s *TaskStore) Close(ctx context.Context) error {
	if err := s.coll.Database().Client().Disconnect(ctx); err != nil {
		return store.NewStoreError("task", "close", "disconnect failed", MapError(err))
	}
	return nil
}

// taskFromBSON converts a decoded document into a Task, rendering the
// ObjectID as its hex string.
func taskFromBSON(doc bson.M) *domain.Task {
	if oid, ok := doc[domain.FieldID].(primitive.ObjectID); ok {
		doc[domain.FieldID] = oid.Hex()
	}
	return domain.TaskFromDocument(doc)
}
