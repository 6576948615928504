package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"fmt"
	"time"
)

// LogSetInput describes one performed set. Sets is the set index.
type LogSetInput struct {
	UserID     int64
	ExerciseID int64
	Date       time.Time
	Sets       int
	Reps       int
	WeightKG   float64
	Notes      string
}

type SessionLogService interface {
	LogSet(ctx context.Context, input LogSetInput) (*domain.WorkoutSessionLog, error)
	// LogsForDate returns an empty slice when nothing was logged.
	LogsForDate(ctx context.Context, userID int64, date time.Time) ([]domain.WorkoutSessionLog, error)
	// DeleteLog removes the log only if it belongs to userID.
	DeleteLog(ctx context.Context, logID, userID int64) error
}

type sessionLogService struct {
	userRepo    repository.UserRepository
	libraryRepo repository.LibraryRepository
	logRepo     repository.SessionLogRepository
	metrics     *metrics.Manager
}

// NewSessionLogService creates a SessionLogService. metricsManager may be nil.
func NewSessionLogService(
	userRepo repository.UserRepository,
	libraryRepo repository.LibraryRepository,
	logRepo repository.SessionLogRepository,
	metricsManager *metrics.Manager,
) SessionLogService {
	return &sessionLogService{
		userRepo:    userRepo,
		libraryRepo: libraryRepo,
		logRepo:     logRepo,
		metrics:     metricsManager,
	}
}

func (s *sessionLogService) LogSet(ctx context.Context, input LogSetInput) (*domain.WorkoutSessionLog, error) {
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if _, err := s.libraryRepo.GetExercise(ctx, input.ExerciseID); err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}

	y, m, d := input.Date.Date()
	entry := &domain.WorkoutSessionLog{
		UserID:     input.UserID,
		ExerciseID: input.ExerciseID,
		Date:       time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Sets:       input.Sets,
		Reps:       input.Reps,
		WeightKG:   input.WeightKG,
		Notes:      input.Notes,
	}
	if _, err := s.logRepo.Create(ctx, entry); err != nil {
		// the user may have been deleted between the checks and the insert
		return nil, fmt.Errorf("create session log: %w", notFoundAs(err, ErrUserNotFound))
	}

	if s.metrics != nil {
		s.metrics.CounterLoggedSets.Inc()
	}
	return entry, nil
}

func (s *sessionLogService) LogsForDate(ctx context.Context, userID int64, date time.Time) ([]domain.WorkoutSessionLog, error) {
	logs, err := s.logRepo.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list session logs: %w", err)
	}
	return logs, nil
}

func (s *sessionLogService) DeleteLog(ctx context.Context, logID, userID int64) error {
	if err := s.logRepo.Delete(ctx, logID, userID); err != nil {
		return notFoundAs(err, ErrSessionLogNotFound)
	}
	return nil
}
