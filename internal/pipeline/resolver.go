package pipeline

import (
	"context"

	"github.com/taskmgmt/notify-api/internal/domain"
	"github.com/taskmgmt/notify-api/internal/store"
)

// Resolver fetches the owning user of a task.
type Resolver struct {
	users store.UserReader
}

// NewResolver creates a Resolver over the given user reader.
func NewResolver(users store.UserReader) *Resolver {
	return &Resolver{users: users}
}

// Resolve looks up the user by ID. A missing user is reported through the
// found flag, not an error; the orchestrator turns it into a skip. The
// error return is reserved for real lookup failures.
func (r *Resolver) Resolve(ctx context.Context, userID string) (*domain.User, bool, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}
