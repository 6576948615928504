package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ScheduleService covers manual edits of a generated week and template swaps.
type ScheduleService interface {
	AddExercise(ctx context.Context, dayID, exerciseID int64, sets int, reps string) (*domain.WorkoutDayExercise, error)
	UpdateExercise(ctx context.Context, dayExerciseID int64, sets int, reps string) (*domain.WorkoutDayExercise, error)
	// ChangeExercise points the assignment at another library exercise, keeping sets and reps.
	ChangeExercise(ctx context.Context, dayExerciseID, newExerciseID int64) (*domain.WorkoutDayExercise, error)
	RemoveExercise(ctx context.Context, dayExerciseID int64) error
	// SwapTemplate replaces the exercises of one day with those of a template.
	SwapTemplate(ctx context.Context, dayID, templateID, userID int64) ([]domain.WorkoutDayExercise, error)
}

type scheduleService struct {
	userRepo     repository.UserRepository
	libraryRepo  repository.LibraryRepository
	templateRepo repository.TemplateRepository
	scheduleRepo repository.ScheduleRepository
}

func NewScheduleService(
	userRepo repository.UserRepository,
	libraryRepo repository.LibraryRepository,
	templateRepo repository.TemplateRepository,
	scheduleRepo repository.ScheduleRepository,
) ScheduleService {
	return &scheduleService{
		userRepo:     userRepo,
		libraryRepo:  libraryRepo,
		templateRepo: templateRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *scheduleService) AddExercise(ctx context.Context, dayID, exerciseID int64, sets int, reps string) (*domain.WorkoutDayExercise, error) {
	if _, err := s.scheduleRepo.GetDay(ctx, dayID); err != nil {
		return nil, notFoundAs(err, ErrWorkoutDayNotFound)
	}
	if _, err := s.libraryRepo.GetExercise(ctx, exerciseID); err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}

	item := &domain.WorkoutDayExercise{
		WorkoutDayID: dayID,
		ExerciseID:   exerciseID,
		Sets:         sets,
		Reps:         reps,
	}
	id, err := s.scheduleRepo.AddDayExercise(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add exercise to day: %w", notFoundAs(err, ErrWorkoutDayNotFound))
	}
	return s.getDayExercise(ctx, id)
}

func (s *scheduleService) UpdateExercise(ctx context.Context, dayExerciseID int64, sets int, reps string) (*domain.WorkoutDayExercise, error) {
	if err := s.scheduleRepo.UpdateDayExerciseScheme(ctx, dayExerciseID, sets, reps); err != nil {
		return nil, notFoundAs(err, ErrDayExerciseNotFound)
	}
	return s.getDayExercise(ctx, dayExerciseID)
}

func (s *scheduleService) ChangeExercise(ctx context.Context, dayExerciseID, newExerciseID int64) (*domain.WorkoutDayExercise, error) {
	if _, err := s.scheduleRepo.GetDayExercise(ctx, dayExerciseID); err != nil {
		return nil, notFoundAs(err, ErrDayExerciseNotFound)
	}
	if _, err := s.libraryRepo.GetExercise(ctx, newExerciseID); err != nil {
		return nil, notFoundAs(err, ErrExerciseNotFound)
	}

	if err := s.scheduleRepo.UpdateDayExerciseExercise(ctx, dayExerciseID, newExerciseID); err != nil {
		return nil, notFoundAs(err, ErrDayExerciseNotFound)
	}
	return s.getDayExercise(ctx, dayExerciseID)
}

func (s *scheduleService) RemoveExercise(ctx context.Context, dayExerciseID int64) error {
	if err := s.scheduleRepo.DeleteDayExercise(ctx, dayExerciseID); err != nil {
		return notFoundAs(err, ErrDayExerciseNotFound)
	}
	return nil
}

func (s *scheduleService) SwapTemplate(ctx context.Context, dayID, templateID, userID int64) ([]domain.WorkoutDayExercise, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if _, err := s.scheduleRepo.GetDay(ctx, dayID); err != nil {
		return nil, notFoundAs(err, ErrWorkoutDayNotFound)
	}
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, notFoundAs(err, ErrTemplateNotFound)
	}

	scheme := templateSchemeForGoal(user.Goal)
	items := make([]domain.WorkoutDayExercise, 0, len(template.Exercises))
	for _, e := range template.Exercises {
		exercise := e
		items = append(items, domain.WorkoutDayExercise{
			ExerciseID: exercise.ID,
			Sets:       scheme.Sets,
			Reps:       scheme.Reps,
			Exercise:   &exercise,
		})
	}

	saved, err := s.scheduleRepo.ReplaceDayExercises(ctx, dayID, items)
	if err != nil {
		return nil, fmt.Errorf("swap template: %w", notFoundAs(err, ErrWorkoutDayNotFound))
	}

	log.Infof("day %d swapped to template %q (%d exercises)", dayID, template.Name, len(saved))
	return saved, nil
}

func (s *scheduleService) getDayExercise(ctx context.Context, id int64) (*domain.WorkoutDayExercise, error) {
	item, err := s.scheduleRepo.GetDayExercise(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrDayExerciseNotFound)
	}
	return item, nil
}

// templateSchemeForGoal is the scheme applied on template swaps: hypertrophy
// unless the goal is clearly endurance or strength oriented.
func templateSchemeForGoal(goal int) generator.Scheme {
	scheme := generator.HypertrophyScheme
	if goal <= 3 {
		scheme = generator.EnduranceScheme
	} else if goal > 6 {
		scheme = generator.StrengthScheme
	}
	return scheme
}
