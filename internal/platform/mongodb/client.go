package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Options configures Open.
type Options struct {
	URI        string
	Database   string
	Collection string
	// Timeout bounds every operation, server selection included.
	Timeout time.Duration
}

// Open connects to the deployment at opts.URI using the Stable API v1 and
// verifies the connection with a ping. The returned store owns the client
// and disconnects it on Close.
func Open(ctx context.Context, opts Options) (*TaskStore, error) {
	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))
	if opts.Timeout > 0 {
		clientOpts.SetTimeout(opts.Timeout).SetServerSelectionTimeout(opts.Timeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", MapError(err))
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo deployment: %w", MapError(err))
	}

	taskStore := NewTaskStore(client.Database(opts.Database).Collection(opts.Collection))
	if err := taskStore.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return taskStore, nil
}
