package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// MapError classifies a driver error into the store error taxonomy.
// Unreachable servers, timeouts and disconnected clients become
// store.ErrStoreUnavailable; anything else the server rejected becomes
// store.ErrOperationFailed. The driver error stays in the chain.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if IsUnavailable(err) {
		return fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", store.ErrOperationFailed, err)
}

// IsUnavailable reports whether err means the deployment could not be reached.
func IsUnavailable(err error) bool {
	return mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, context.DeadlineExceeded)
}
