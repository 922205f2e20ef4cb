package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pockettrader/pockettrader/internal/database/memory"
	"github.com/pockettrader/pockettrader/internal/domain"
)

func TestRegisterNewUser(t *testing.T) {
	svc := NewService(memory.NewStore())

	user, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterIsIdempotentByUsername(t *testing.T) {
	svc := NewService(memory.NewStore())

	first, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterTrimsAndValidatesUsername(t *testing.T) {
	svc := NewService(memory.NewStore())

	user, err := svc.Register(context.Background(), "  alice  ")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Register(context.Background(), "ab")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Register(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewService(memory.NewStore())
	_, err := svc.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsersSortedByUsername(t *testing.T) {
	svc := NewService(memory.NewStore())
	_, err := svc.Register(context.Background(), "bob")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "alice")
	require.NoError(t, err)

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
