package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostgresTaskStore implements the store.TaskStore interface using PostgreSQL
type PostgresTaskStore struct {
	db store.DBTX
}

var _ store.TaskStore = (*PostgresTaskStore)(nil)

// NewPostgresTaskStore creates a new PostgresTaskStore
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Connect opens a pgx connection pool for url and verifies it with a ping.
// It does not touch the schema.
func Connect(ctx context.Context, url string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", MapError(err))
	}
	return db, nil
}

// Open connects to url like Connect and applies pending migrations.
func Open(ctx context.Context, url string, timeout time.Duration) (*sql.DB, error) {
	db, err := Connect(ctx, url, timeout)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, db, logger.FromContext(ctx)); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// whereClause renders the owner and status conditions of filter, numbering
// placeholders from 1.
func whereClause(filter store.TaskFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.UserEmail != "" {
		args = append(args, filter.UserEmail)
		conds = append(conds, "user_email = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func checkID(id, op string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return store.NewStoreError("task", op, "invalid task id", fmt.Errorf("%w: %v", store.ErrMalformedID, err))
	}
	return nil
}

// Count implements store.TaskStore.
func (s *PostgresTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int64, error) {
	where, args := whereClause(filter)
	query := "SELECT COUNT(*) FROM tasks" + where

	var n int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Error("failed to count tasks",
			"status", filter.Status,
			"error", err)
		return 0, store.NewStoreError("task", "count", "count rows failed", MapError(err))
	}
	return n, nil
}

// Find implements store.TaskStore. Rows come back in insertion order.
func (s *PostgresTaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	opts store.FindOptions,
) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	where, args := whereClause(filter)
	query := "SELECT id, doc FROM tasks" + where + " ORDER BY seq ASC"
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if skip := store.ClampSkip(opts.Skip); skip > 0 {
		args = append(args, skip)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks",
			"status", filter.Status,
			"limit", opts.Limit,
			"skip", opts.Skip,
			"error", err)
		return nil, store.NewStoreError("task", "find", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, store.NewStoreError("task", "find", "scan failed", MapError(err))
		}

		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, store.NewStoreError("task", "find", "decode document failed",
				fmt.Errorf("%w: %w", store.ErrOperationFailed, err))
		}
		if doc == nil {
			doc = map[string]any{}
		}
		doc[domain.FieldID] = id
		tasks = append(tasks, domain.TaskFromDocument(doc))
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, store.NewStoreError("task", "find", "row iteration failed", MapError(err))
	}

	return tasks, nil
}

// InsertOne implements store.TaskStore.
func (s *PostgresTaskStore) InsertOne(ctx context.Context, task *domain.Task) (*store.InsertResult, error) {
	if err := task.Validate(); err != nil {
		return nil, store.NewStoreError("task", "insert", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	doc := task.Document()
	delete(doc, domain.FieldID)
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, store.NewStoreError("task", "insert", "encode document failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	id := primitive.NewObjectID().Hex()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, user_email, status, doc) VALUES ($1, $2, $3, $4)`,
		id,
		task.UserEmail,
		string(task.Status),
		string(payload),
	)
	if err != nil {
		log := logger.FromContext(ctx)
		if IsUniqueViolation(err) {
			log.Error("task id collision", "task_id", id, "error", err)
		} else {
			log.Error("failed to insert task", "error", err)
		}
		return nil, store.NewStoreError("task", "insert", "insert failed", MapError(err))
	}

	task.ID = id
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// updateQuery merges the fields into the document of the addressed task.
// The task counts as matched when id and owner agree, and as modified only
// when the merge changes the stored document.
const updateQuery = `
WITH target AS (
	SELECT id, doc FROM tasks WHERE id = $1 AND user_email = $2 FOR UPDATE
), changed AS (
	UPDATE tasks t
	SET doc = t.doc || $3::jsonb,
		status = COALESCE($4, t.status),
		updated_at = NOW()
	FROM target
	WHERE t.id = target.id AND (target.doc || $3::jsonb) <> target.doc
	RETURNING t.id
)
SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM changed)`

// UpdateOne implements store.TaskStore with merge semantics and no upsert.
func (s *PostgresTaskStore) UpdateOne(
	ctx context.Context,
	key store.TaskKey,
	fields map[string]any,
) (*store.UpdateResult, error) {
	if err := checkID(key.ID, "update"); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, store.NewStoreError("task", "update", "encode fields failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	var status sql.NullString
	if raw, ok := fields[domain.FieldStatus].(string); ok {
		status = sql.NullString{String: raw, Valid: true}
	}

	var matched, modified int64
	err = s.db.QueryRowContext(ctx, updateQuery, key.ID, key.UserEmail, string(payload), status).
		Scan(&matched, &modified)
	if err != nil {
		logger.FromContext(ctx).Error("failed to update task",
			"task_id", key.ID,
			"error", err)
		return nil, store.NewStoreError("task", "update", "update failed", MapError(err))
	}

	return &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

// DeleteOne implements store.TaskStore.
func (s *PostgresTaskStore) DeleteOne(ctx context.Context, key store.TaskKey) (*store.DeleteResult, error) {
	if err := checkID(key.ID, "delete"); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_email = $2`,
		key.ID,
		key.UserEmail,
	)
	if err != nil {
		logger.FromContext(ctx).Error("failed to delete task",
			"task_id", key.ID,
			"error", err)
		return nil, store.NewStoreError("task", "delete", "delete failed", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, store.NewStoreError("task", "delete", "failed to get rows affected", MapError(err))
	}
	return &store.DeleteResult{Acknowledged: true, DeletedCount: rowsAffected}, nil
}

// Ping implements store.TaskStore. It is a no-op when the store runs on a
// handle that cannot ping, such as a transaction.
func (s *PostgresTaskStore) Ping(ctx context.Context) error {
	pinger, ok := s.db.(interface{ PingContext(context.Context) error })
	if !ok {
		return nil
	}
	if err := pinger.PingContext(ctx); err != nil {
		return store.NewStoreError("task", "ping", "ping failed", MapError(err))
	}
	return nil
}

// Close implements store.TaskStore by closing the connection pool when the
// store owns one.
func (s *PostgresTaskStore) Close(ctx context.Context) error {
	closer, ok := s.db.(interface{ Close() error })
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return store.NewStoreError("task", "close", "close failed", MapError(err))
	}
	return nil
}
