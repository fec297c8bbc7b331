package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/platform/logger"
	"github.com/taskmgmt/notify-api/internal/store"
)

// PostgresUserStore implements the store.UserReader interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserReader interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Ensure PostgresUserStore implements store.UserReader interface
var _ store.UserReader = (*PostgresUserStore)(nil)

// GetByID implements store.UserReader.GetByID.
// Returns store.ErrUserNotFound when no row matches; callers map that to a
// skip, not a failure.
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, COALESCE(email, ''), email_notifications
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Preferences.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			"user_id", id,
			"error", err)
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}
