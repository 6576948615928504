package repository

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"time"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user profiles.
type UserRepository interface {
	// Create returns ErrConflict when the username is taken.
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// Delete removes the user together with its plan, days, assignments and logs.
	Delete(ctx context.Context, id int64) error
}

// WorkoutPlanRepository defines the interface for the high-level plan of a user.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, plan *domain.WorkoutPlan) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.WorkoutPlan, error)
	Update(ctx context.Context, plan *domain.WorkoutPlan) error
}

// LibraryRepository defines the interface for the exercise library.
type LibraryRepository interface {
	CountMuscleGroups(ctx context.Context) (int, error)
	CreateMuscleGroup(ctx context.Context, name string) (*domain.MuscleGroup, error)
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)

	CreateExercise(ctx context.Context, exercise *domain.Exercise) (int64, error)
	GetExercise(ctx context.Context, id int64) (*domain.Exercise, error)
	// ListExercises returns every exercise when muscleGroupIDs is empty.
	ListExercises(ctx context.Context, muscleGroupIDs []int64) ([]domain.Exercise, error)
	ListExercisesByGroupNames(ctx context.Context, groupNames []string) ([]domain.Exercise, error)
}

// TemplateRepository defines the interface for workout templates.
type TemplateRepository interface {
	Count(ctx context.Context) (int, error)
	// Create inserts the template and its exercise links in one transaction.
	Create(ctx context.Context, name string, exerciseIDs []int64) (*domain.WorkoutTemplate, error)
	List(ctx context.Context) ([]domain.WorkoutTemplate, error)
	// GetByID returns the template with its exercises.
	GetByID(ctx context.Context, id int64) (*domain.WorkoutTemplate, error)
}

// ScheduleRepository defines the interface for weekly schedules.
type ScheduleRepository interface {
	// ReplaceForUser deletes every day of the user (cascading their exercises)
	// and inserts days in the given order, in one transaction.
	ReplaceForUser(ctx context.Context, userID int64, days []domain.WorkoutDay) ([]domain.WorkoutDay, error)
	// ListForUser returns the user's days ordered by id, exercises embedded.
	ListForUser(ctx context.Context, userID int64) ([]domain.WorkoutDay, error)
	GetDay(ctx context.Context, dayID int64) (*domain.WorkoutDay, error)
	// ReplaceDayExercises swaps the exercises of one day in one transaction.
	ReplaceDayExercises(ctx context.Context, dayID int64, items []domain.WorkoutDayExercise) ([]domain.WorkoutDayExercise, error)

	AddDayExercise(ctx context.Context, item *domain.WorkoutDayExercise) (int64, error)
	GetDayExercise(ctx context.Context, id int64) (*domain.WorkoutDayExercise, error)
	UpdateDayExerciseScheme(ctx context.Context, id int64, sets int, reps string) error
	UpdateDayExerciseExercise(ctx context.Context, id, exerciseID int64) error
	DeleteDayExercise(ctx context.Context, id int64) error
}

// SessionLogRepository defines the interface for performed-set logs.
type SessionLogRepository interface {
	Create(ctx context.Context, log *domain.WorkoutSessionLog) (int64, error)
	ListByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]domain.WorkoutSessionLog, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.WorkoutSessionLog, error)
	// Delete only removes the log when both id and userID match.
	Delete(ctx context.Context, id, userID int64) error
}

// Repositories bundles one backend's implementations.
type Repositories struct {
	Users     UserRepository
	Plans     WorkoutPlanRepository
	Library   LibraryRepository
	Templates TemplateRepository
	Schedules ScheduleRepository
	Logs      SessionLogRepository
}
