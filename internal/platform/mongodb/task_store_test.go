package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const (
	testOwner = "a@x.com"
	testNS    = "taskQuestDB.tasks"
)

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestCount(t *testing.T) {
	mt := newMockT(t)

	mt.Run("returns the count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int64(5)}}))

		n, err := NewTaskStore(mt.Coll).Count(context.Background(),
			store.TaskFilter{UserEmail: testOwner, Status: domain.TaskStatusTodo})

		require.NoError(mt, err)
		assert.Equal(mt, int64(5), n)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "aggregate", evt.CommandName)
	})

	mt.Run("maps server errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad filter",
		}))

		_, err := NewTaskStore(mt.Coll).Count(context.Background(), store.TaskFilter{UserEmail: testOwner})

		assert.ErrorIs(mt, err, store.ErrOperationFailed)
		assert.False(mt, store.IsUnavailable(err))
	})
}

func TestFind(t *testing.T) {
	mt := newMockT(t)

	mt.Run("decodes documents and sends paging options", func(mt *mtest.T) {
		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "userEmail", Value: testOwner},
				{Key: "status", Value: "todo"},
				{Key: "title", Value: "todo-3"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "userEmail", Value: testOwner},
				{Key: "status", Value: "todo"},
				{Key: "title", Value: "todo-4"},
			},
		))

		tasks, err := NewTaskStore(mt.Coll).Find(context.Background(),
			store.TaskFilter{UserEmail: testOwner, Status: domain.TaskStatusTodo},
			store.FindOptions{Limit: 2, Skip: 2},
		)
		require.NoError(mt, err)
		require.Len(mt, tasks, 2)

		assert.Equal(mt, first.Hex(), tasks[0].ID)
		assert.Equal(mt, testOwner, tasks[0].UserEmail)
		assert.Equal(mt, domain.TaskStatusTodo, tasks[0].Status)
		assert.Equal(mt, "todo-3", tasks[0].Fields["title"])
		assert.Equal(mt, second.Hex(), tasks[1].ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "find", evt.CommandName)
		assert.Equal(mt, int64(2), evt.Command.Lookup("limit").AsInt64())
		assert.Equal(mt, int64(2), evt.Command.Lookup("skip").AsInt64())
		assert.Equal(mt, int64(1), evt.Command.Lookup("sort", "_id").AsInt64())
		assert.Equal(mt, testOwner, evt.Command.Lookup("filter", "userEmail").StringValue())
		assert.Equal(mt, "todo", evt.Command.Lookup("filter", "status").StringValue())
	})

	mt.Run("omits non-positive skip", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		tasks, err := NewTaskStore(mt.Coll).Find(context.Background(),
			store.TaskFilter{UserEmail: testOwner, Status: domain.TaskStatusOngoing},
			store.FindOptions{Limit: 3, Skip: -6},
		)
		require.NoError(mt, err)
		assert.NotNil(mt, tasks)
		assert.Empty(mt, tasks)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		_, err = evt.Command.LookupErr("skip")
		assert.Error(mt, err, "skip must not be sent when it is not positive")
	})

	mt.Run("maps errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    50,
			Name:    "MaxTimeMSExpired",
			Message: "operation exceeded time limit",
		}))

		tasks, err := NewTaskStore(mt.Coll).Find(context.Background(),
			store.TaskFilter{UserEmail: testOwner}, store.FindOptions{Limit: 3})
		assert.Nil(mt, tasks)
		assert.Error(mt, err)

		var se *store.StoreError
		require.ErrorAs(mt, err, &se)
		assert.Equal(mt, "find", se.Operation)
	})
}

func TestInsertOne(t *testing.T) {
	mt := newMockT(t)

	mt.Run("assigns an object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		task := &domain.Task{
			UserEmail: testOwner,
			Status:    domain.TaskStatusTodo,
			Fields:    map[string]any{"title": "Write report"},
		}
		result, err := NewTaskStore(mt.Coll).InsertOne(context.Background(), task)
		require.NoError(mt, err)

		assert.True(mt, result.Acknowledged)
		_, parseErr := primitive.ObjectIDFromHex(result.InsertedID)
		assert.NoError(mt, parseErr)
		assert.Equal(mt, result.InsertedID, task.ID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
		assert.Equal(mt, "Write report", evt.Command.Lookup("documents", "0", "title").StringValue())
	})

	mt.Run("rejects invalid tasks without a round trip", func(mt *mtest.T) {
		_, err := NewTaskStore(mt.Coll).InsertOne(context.Background(), &domain.Task{Status: domain.TaskStatusTodo})

		assert.ErrorIs(mt, err, store.ErrInvalidEntity)
		assert.ErrorIs(mt, err, domain.ErrTaskUserEmailEmpty)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("maps write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := NewTaskStore(mt.Coll).InsertOne(context.Background(),
			&domain.Task{UserEmail: testOwner, Status: domain.TaskStatusTodo})

		assert.ErrorIs(mt, err, store.ErrOperationFailed)
	})
}

func TestUpdateOne(t *testing.T) {
	mt := newMockT(t)
	id := primitive.NewObjectID()

	mt.Run("reports matched and modified counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		result, err := NewTaskStore(mt.Coll).UpdateOne(context.Background(),
			store.TaskKey{ID: id.Hex(), UserEmail: testOwner},
			map[string]any{"status": "completed"},
		)
		require.NoError(mt, err)
		assert.True(mt, result.Acknowledged)
		assert.Equal(mt, int64(1), result.MatchedCount)
		assert.Equal(mt, int64(1), result.ModifiedCount)
		assert.Nil(mt, result.UpsertedID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)
		assert.Equal(mt, id, evt.Command.Lookup("updates", "0", "q", "_id").ObjectID())
		assert.Equal(mt, testOwner, evt.Command.Lookup("updates", "0", "q", "userEmail").StringValue())
		assert.Equal(mt, "completed", evt.Command.Lookup("updates", "0", "u", "$set", "status").StringValue())
	})

	mt.Run("foreign or missing task matches nothing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		result, err := NewTaskStore(mt.Coll).UpdateOne(context.Background(),
			store.TaskKey{ID: id.Hex(), UserEmail: "b@x.com"},
			map[string]any{"title": "hijack"},
		)
		require.NoError(mt, err)
		assert.True(mt, result.Acknowledged)
		assert.Equal(mt, int64(0), result.MatchedCount)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := NewTaskStore(mt.Coll).UpdateOne(context.Background(),
			store.TaskKey{ID: "not-an-object-id", UserEmail: testOwner},
			map[string]any{"title": "x"},
		)
		assert.ErrorIs(mt, err, store.ErrMalformedID)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestDeleteOne(t *testing.T) {
	mt := newMockT(t)
	id := primitive.NewObjectID()

	mt.Run("reports deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		result, err := NewTaskStore(mt.Coll).DeleteOne(context.Background(),
			store.TaskKey{ID: id.Hex(), UserEmail: testOwner})
		require.NoError(mt, err)
		assert.True(mt, result.Acknowledged)
		assert.Equal(mt, int64(1), result.DeletedCount)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "delete", evt.CommandName)
		assert.Equal(mt, testOwner, evt.Command.Lookup("deletes", "0", "q", "userEmail").StringValue())
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		_, err := NewTaskStore(mt.Coll).DeleteOne(context.Background(),
			store.TaskKey{ID: "123", UserEmail: testOwner})
		assert.ErrorIs(mt, err, store.ErrMalformedID)
	})
}

func TestPingAndIndexes(t *testing.T) {
	mt := newMockT(t)

	mt.Run("ping", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, NewTaskStore(mt.Coll).Ping(context.Background()))
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, NewTaskStore(mt.Coll).EnsureIndexes(context.Background()))

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "createIndexes", evt.CommandName)
		assert.Equal(mt, listingIndexName, evt.Command.Lookup("indexes", "0", "name").StringValue())
	})
}

func TestMapError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapError(nil))
	assert.ErrorIs(t, MapError(context.DeadlineExceeded), store.ErrStoreUnavailable)
	assert.ErrorIs(t, MapError(mongo.ErrClientDisconnected), store.ErrStoreUnavailable)

	plain := errors.New("write conflict")
	mapped := MapError(plain)
	assert.ErrorIs(t, mapped, store.ErrOperationFailed)
	assert.ErrorIs(t, mapped, plain)
}
