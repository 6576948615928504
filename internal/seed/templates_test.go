package seed

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository/sqlite"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTemplatesSkipsUnresolvable(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "templates.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))
	repos := sqlite.NewRepositories(db)

	group, err := repos.Library.CreateMuscleGroup(ctx, "Legs")
	require.NoError(t, err)
	_, err = repos.Library.CreateExercise(ctx, &domain.Exercise{Name: "Squats", Type: domain.ExerciseCompound, MuscleGroupID: group.ID})
	require.NoError(t, err)

	var res Result
	require.NoError(t, NewSeeder(repos.Library, repos.Templates).seedTemplates(ctx, &res))

	// only Leg Day references Squats
	assert.Equal(t, 1, res.Templates)
	assert.Equal(t, []string{"Push Day", "Pull Day", "Chest Focus", "Back Focus"}, res.SkippedTemplates)
	assert.Len(t, res.SkippedExercises, 24)

	list, err := repos.Templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	leg, err := repos.Templates.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", leg.Name)
	require.Len(t, leg.Exercises, 1)
	assert.Equal(t, "Squats", leg.Exercises[0].Name)
}
