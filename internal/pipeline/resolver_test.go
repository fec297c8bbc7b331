package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmgmt/notify-api/internal/domain"
)

func TestResolverFindsUser(t *testing.T) {
	users := NewMockUserReader()
	users.Users["USER#42"] = &domain.User{
		ID:          "USER#42",
		Email:       "a@x.com",
		Preferences: domain.NotificationPreferences{Email: true},
	}
	resolver := NewResolver(users)

	user, found, err := resolver.Resolve(context.Background(), "USER#42")

	require.NoError(t, err)
	assert.True(t, found)
	require.NotNil(t, user)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestResolverNotFoundIsNotAnError(t *testing.T) {
	resolver := NewResolver(NewMockUserReader())

	user, found, err := resolver.Resolve(context.Background(), "USER#404")

	require.NoError(t, err, "a missing user must not surface as an error")
	assert.False(t, found)
	assert.Nil(t, user)
}

func TestResolverRealLookupFailure(t *testing.T) {
	users := NewMockUserReader()
	users.GetByIDFn = func(ctx context.Context, id string) (*domain.User, error) {
		return nil, errors.New("connection refused")
	}
	resolver := NewResolver(users)

	_, found, err := resolver.Resolve(context.Background(), "USER#42")

	require.Error(t, err)
	assert.False(t, found)
}
