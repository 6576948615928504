package postgres_test

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/postgres"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
)

type PostgresSuite struct {
	suite.Suite

	pool     *pgxpool.Pool
	resource *dockertest.Resource
	repos    repository.Repositories
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("docker unavailable: %s", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		s.T().Skipf("docker unavailable: %s", err)
	}

	s.resource, err = dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=fitness",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	s.Require().NoError(err)
	s.Require().NoError(s.resource.Expire(120))

	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fitness?sslmode=disable", s.resource.GetPort("5432/tcp"))
	s.Require().NoError(dockerPool.Retry(func() error {
		pool, err := postgres.NewPool(ctx, postgres.NewPoolParams{URL: dsn})
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}))

	s.Require().NoError(postgres.Migrate(ctx, s.pool))
	// second run must be a no-op
	s.Require().NoError(postgres.Migrate(ctx, s.pool))
	s.repos = postgres.NewRepositories(s.pool)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.resource != nil {
		if err := s.resource.Close(); err != nil {
			s.T().Logf("postgres teardown: %s", err)
		}
	}
}

func (s *PostgresSuite) newUser(username string) *domain.User {
	u := &domain.User{Username: username, Age: 30, HeightCM: 180, WeightKG: 80.5, Gender: "male", BodyType: 2, Goal: 5}
	_, err := s.repos.Users.Create(context.Background(), u)
	s.Require().NoError(err)
	return u
}

func (s *PostgresSuite) newExercise(name string) *domain.Exercise {
	ctx := context.Background()
	group, err := s.repos.Library.CreateMuscleGroup(ctx, name+" group")
	s.Require().NoError(err)
	e := &domain.Exercise{Name: name, Type: domain.ExerciseCompound, MuscleGroupID: group.ID}
	_, err = s.repos.Library.CreateExercise(ctx, e)
	s.Require().NoError(err)
	return e
}

func (s *PostgresSuite) TestDuplicateUsername() {
	s.newUser("pg-dup")
	_, err := s.repos.Users.Create(context.Background(), &domain.User{Username: "pg-dup", Goal: 1})
	s.ErrorIs(err, repository.ErrConflict)
}

func (s *PostgresSuite) TestReplaceScheduleAndCascade() {
	ctx := context.Background()
	user := s.newUser("pg-cascade")
	exercise := s.newExercise("PG Squat")

	week := make([]domain.WorkoutDay, 0, len(domain.Week))
	for _, d := range domain.Week {
		week = append(week, domain.WorkoutDay{
			DayOfWeek: d,
			Exercises: []domain.WorkoutDayExercise{{ExerciseID: exercise.ID, Sets: 4, Reps: "8-12"}},
		})
	}

	_, err := s.repos.Schedules.ReplaceForUser(ctx, user.ID, week)
	s.Require().NoError(err)
	saved, err := s.repos.Schedules.ReplaceForUser(ctx, user.ID, week)
	s.Require().NoError(err)

	days, err := s.repos.Schedules.ListForUser(ctx, user.ID)
	s.Require().NoError(err)
	s.Len(days, 7)
	s.Equal(saved[0].ID, days[0].ID)
	s.Equal(domain.Monday, days[0].DayOfWeek)
	s.Require().Len(days[0].Exercises, 1)
	s.Equal("PG Squat", days[0].Exercises[0].Exercise.Name)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.repos.Logs.Create(ctx, &domain.WorkoutSessionLog{
		UserID: user.ID, ExerciseID: exercise.ID, Date: date, Sets: 1, Reps: 10, WeightKG: 60,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.repos.Users.Delete(ctx, user.ID))

	days, err = s.repos.Schedules.ListForUser(ctx, user.ID)
	s.Require().NoError(err)
	s.Empty(days)
	_, err = s.repos.Schedules.GetDayExercise(ctx, saved[0].Exercises[0].ID)
	s.ErrorIs(err, repository.ErrNotFound)
	logs, err := s.repos.Logs.ListByUser(ctx, user.ID)
	s.Require().NoError(err)
	s.Empty(logs)
}

func (s *PostgresSuite) TestSessionLogDeleteRequiresOwner() {
	ctx := context.Background()
	owner := s.newUser("pg-owner")
	other := s.newUser("pg-other")
	exercise := s.newExercise("PG Bench")

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	id, err := s.repos.Logs.Create(ctx, &domain.WorkoutSessionLog{
		UserID: owner.ID, ExerciseID: exercise.ID, Date: date, Sets: 1, Reps: 8, WeightKG: 70,
	})
	s.Require().NoError(err)

	s.ErrorIs(s.repos.Logs.Delete(ctx, id, other.ID), repository.ErrNotFound)

	logs, err := s.repos.Logs.ListByUserAndDate(ctx, owner.ID, date)
	s.Require().NoError(err)
	s.Len(logs, 1)

	s.NoError(s.repos.Logs.Delete(ctx, id, owner.ID))
}

func (s *PostgresSuite) TestLogForMissingExercise() {
	user := s.newUser("pg-missing")
	_, err := s.repos.Logs.Create(context.Background(), &domain.WorkoutSessionLog{
		UserID: user.ID, ExerciseID: 999999, Date: time.Now().UTC(), Sets: 1, Reps: 1,
	})
	s.ErrorIs(err, repository.ErrNotFound)
}
