package seed_test

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/sqlite"
	"alcyxob/fitness-planner/internal/seed"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return sqlite.NewRepositories(db)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	seeder := seed.NewSeeder(repos.Library, repos.Templates)

	first, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, first.MuscleGroups)
	assert.Equal(t, 32, first.Exercises)
	assert.Equal(t, 5, first.Templates)
	assert.Empty(t, first.SkippedExercises)

	second, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, second)

	groups, err := repos.Library.ListMuscleGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 8)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Chest", "Back", "Legs", "Shoulders", "Biceps", "Triceps", "Abs", "Cardio"}, names)

	exercises, err := repos.Library.ListExercises(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, exercises, 32)

	cardio, err := repos.Library.ListExercisesByGroupNames(ctx, []string{"Cardio"})
	require.NoError(t, err)
	require.Len(t, cardio, 3)
	for _, e := range cardio {
		assert.Equal(t, domain.ExerciseCardio, e.Type)
	}

	list, err := repos.Templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)
	for _, tpl := range list {
		full, err := repos.Templates.GetByID(ctx, tpl.ID)
		require.NoError(t, err)
		assert.Len(t, full.Exercises, 5, tpl.Name)
	}

	push, err := repos.Templates.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", push.Name)
	assert.Equal(t, "Bench Press", push.Exercises[0].Name)
	assert.Equal(t, "Dumbbell Lateral Raises", push.Exercises[4].Name)
}

func TestRunSkipsWhenLibraryExists(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)

	// library present but templates absent: nothing is added
	_, err := repos.Library.CreateMuscleGroup(ctx, "Custom")
	require.NoError(t, err)

	res, err := seed.NewSeeder(repos.Library, repos.Templates).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, res)

	count, err := repos.Templates.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	groups, err := repos.Library.ListMuscleGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}
