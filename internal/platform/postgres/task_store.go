// Package postgres provides PostgreSQL implementations of the store
// interfaces, using database/sql over the pgx driver.
package postgres

import (
	"context"
	"fmt"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
	"github.com/taskmgmt/notify-api/internal/store"
)

// PostgresTaskStore implements the store.TaskReader interface using a
// PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskReader interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Ensure PostgresTaskStore implements store.TaskReader interface
var _ store.TaskReader = (*PostgresTaskStore)(nil)

// ListDueForNotification implements store.TaskReader.ListDueForNotification.
// The due_marker equality rides the partial index created by the migrations;
// status and notification_sent are safety filters on top of it.
func (s *PostgresTaskStore) ListDueForNotification(
	ctx context.Context,
	dueMarker string,
) ([]domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT user_id, task_id, title, status, notification_sent, due_marker
		FROM tasks
		WHERE due_marker = $1
		  AND notification_sent = FALSE
		  AND status <> $2
	`

	rows, err := s.db.QueryContext(ctx, query, dueMarker, domain.TaskStatusCompleted)
	if err != nil {
		log.Error("failed to query due tasks",
			"due_marker", dueMarker,
			"error", err)
		return nil, fmt.Errorf("failed to query due tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task

	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(
			&t.UserID,
			&t.TaskID,
			&t.Title,
			&t.Status,
			&t.NotificationSent,
			&t.DueMarker,
		); err != nil {
			log.Error("failed to scan due task row",
				"due_marker", dueMarker,
				"error", err)
			return nil, fmt.Errorf("failed to scan due task row: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate due task rows: %w", err)
	}

	return tasks, nil
}
