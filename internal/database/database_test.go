package database

import (
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fitness.db")

	backend, err := Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	assert.Equal(t, config.DriverSQLite, backend.Driver)
	assert.Nil(t, backend.Collector)

	id, err := backend.Repos.Users.Create(ctx, &domain.User{Username: "reopen", Goal: 5})
	require.NoError(t, err)
	require.NoError(t, backend.Close())

	// migrations are idempotent and data survives a reopen
	backend, err = Open(ctx, config.DatabaseConfig{Driver: config.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer backend.Close()

	user, err := backend.Repos.Users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "reopen", user.Username)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	assert.ErrorContains(t, err, `unsupported database driver "mysql"`)
}
