package store

import (
	"context"

	"github.com/taskmgmt/notify-api/internal/domain"
)

// UserReader defines the read-side interface for recipient resolution.
type UserReader interface {
	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
