package service_test

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/sqlite"
	"alcyxob/fitness-planner/internal/seed"
	"alcyxob/fitness-planner/internal/service"
	"context"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// firstSource always picks the first remaining candidate.
type firstSource struct{}

func (firstSource) IntN(int) int { return 0 }

type testEnv struct {
	repos    repository.Repositories
	metrics  *metrics.Manager
	users    service.UserService
	plans    service.PlanService
	schedule service.ScheduleService
	library  service.LibraryService
	logs     service.SessionLogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "service.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	repos := sqlite.NewRepositories(db)
	_, err = seed.NewSeeder(repos.Library, repos.Templates).Run(ctx)
	require.NoError(t, err)

	metricsManager := metrics.NewTestManager()
	gen := generator.New(repos.Library, firstSource{})

	return &testEnv{
		repos:    repos,
		metrics:  metricsManager,
		users:    service.NewUserService(repos.Users),
		plans:    service.NewPlanService(repos.Users, repos.Plans, repos.Schedules, gen, metricsManager),
		schedule: service.NewScheduleService(repos.Users, repos.Library, repos.Templates, repos.Schedules),
		library:  service.NewLibraryService(repos.Library, repos.Templates),
		logs:     service.NewSessionLogService(repos.Users, repos.Library, repos.Logs, metricsManager),
	}
}

func (e *testEnv) createUser(t *testing.T, goal int) *domain.User {
	t.Helper()
	user, err := e.users.CreateUser(context.Background(), &domain.User{
		Username: gofakeit.Username() + gofakeit.DigitN(6),
		Age:      gofakeit.Number(18, 70),
		HeightCM: gofakeit.Number(150, 200),
		WeightKG: gofakeit.Float64Range(50, 120),
		Gender:   gofakeit.Gender(),
		BodyType: gofakeit.Number(1, 3),
		Goal:     goal,
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) exerciseByName(t *testing.T, name string) domain.Exercise {
	t.Helper()
	all, err := e.repos.Library.ListExercises(context.Background(), nil)
	require.NoError(t, err)
	for _, ex := range all {
		if ex.Name == name {
			return ex
		}
	}
	t.Fatalf("exercise %q not seeded", name)
	return domain.Exercise{}
}
