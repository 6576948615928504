package service_test

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.createUser(t, 5)
	require.NotZero(t, user.ID)

	got, err := env.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	_, err = env.users.CreateUser(ctx, &domain.User{Username: user.Username, Goal: 1})
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	_, err = env.users.CreateUser(ctx, &domain.User{Username: "   "})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	require.NoError(t, env.users.DeleteUser(ctx, user.ID))
	_, err = env.users.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	assert.ErrorIs(t, env.users.DeleteUser(ctx, user.ID), service.ErrUserNotFound)
}

func TestUserServiceAcceptsOutOfRangeGoal(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, 42)
	assert.Equal(t, 42, user.Goal)
}
