package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PlanInput carries the user-editable plan parameters.
type PlanInput struct {
	WorkoutType     string
	SessionsPerWeek int
	HoursPerSession float64
}

// PlanView is a plan together with the user's current weekly schedule.
type PlanView struct {
	Plan *domain.WorkoutPlan
	Days []domain.WorkoutDay
}

type PlanService interface {
	// CreatePlan stores the plan (updating an existing one) and regenerates the
	// schedule. The schedule is generated first, so a generation error stores nothing.
	CreatePlan(ctx context.Context, userID int64, input PlanInput) (*domain.WorkoutPlan, error)
	// UpdatePlan changes an existing plan and regenerates the schedule.
	UpdatePlan(ctx context.Context, userID int64, input PlanInput) (*domain.WorkoutPlan, error)
	// RegeneratePlan replaces the schedule using the stored plan.
	RegeneratePlan(ctx context.Context, userID int64) ([]domain.WorkoutDay, error)
	GetPlan(ctx context.Context, userID int64) (*PlanView, error)
}

type planService struct {
	userRepo     repository.UserRepository
	planRepo     repository.WorkoutPlanRepository
	scheduleRepo repository.ScheduleRepository
	generator    *generator.Generator
	metrics      *metrics.Manager
}

// NewPlanService creates a PlanService. metricsManager may be nil.
func NewPlanService(
	userRepo repository.UserRepository,
	planRepo repository.WorkoutPlanRepository,
	scheduleRepo repository.ScheduleRepository,
	gen *generator.Generator,
	metricsManager *metrics.Manager,
) PlanService {
	return &planService{
		userRepo:     userRepo,
		planRepo:     planRepo,
		scheduleRepo: scheduleRepo,
		generator:    gen,
		metrics:      metricsManager,
	}
}

func (s *planService) CreatePlan(ctx context.Context, userID int64, input PlanInput) (*domain.WorkoutPlan, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("get plan: %w", err)
	}

	plan := &domain.WorkoutPlan{UserID: userID}
	if existing != nil {
		plan = existing
	}
	applyPlanInput(plan, input)

	// generation failures must leave the stored plan untouched
	res, err := s.generate(ctx, user, plan)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if _, err := s.planRepo.Create(ctx, plan); err != nil {
			return nil, fmt.Errorf("create plan: %w", notFoundAs(err, ErrUserNotFound))
		}
	} else if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}

	if _, err := s.saveSchedule(ctx, user, res); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) UpdatePlan(ctx context.Context, userID int64, input PlanInput) (*domain.WorkoutPlan, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrPlanNotFound)
	}
	applyPlanInput(plan, input)

	res, err := s.generate(ctx, user, plan)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", notFoundAs(err, ErrPlanNotFound))
	}

	if _, err := s.saveSchedule(ctx, user, res); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) RegeneratePlan(ctx context.Context, userID int64) ([]domain.WorkoutDay, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrPlanNotFound)
	}
	return s.regenerate(ctx, user, plan)
}

func (s *planService) GetPlan(ctx context.Context, userID int64) (*PlanView, error) {
	plan, err := s.planRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrPlanNotFound)
	}

	days, err := s.scheduleRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout days: %w", err)
	}
	return &PlanView{Plan: plan, Days: days}, nil
}

// regenerate replaces the whole schedule of the user. Manual edits are lost.
func (s *planService) regenerate(ctx context.Context, user *domain.User, plan *domain.WorkoutPlan) ([]domain.WorkoutDay, error) {
	res, err := s.generate(ctx, user, plan)
	if err != nil {
		return nil, err
	}
	return s.saveSchedule(ctx, user, res)
}

func (s *planService) generate(ctx context.Context, user *domain.User, plan *domain.WorkoutPlan) (*generator.Result, error) {
	res, err := s.generator.Generate(ctx, plan.SessionsPerWeek, user.Goal)
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}
	return res, nil
}

// saveSchedule swaps in the generated week in one transaction. A failure here
// leaves the new plan parameters next to the previous schedule; RegeneratePlan
// brings them back in line.
func (s *planService) saveSchedule(ctx context.Context, user *domain.User, res *generator.Result) ([]domain.WorkoutDay, error) {
	days, err := s.scheduleRepo.ReplaceForUser(ctx, user.ID, res.Days)
	if err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}

	if s.metrics != nil {
		s.metrics.CounterPlanGenerations.WithLabelValues(res.Split).Inc()
	}
	log.Infof("generated %s schedule for user %d (%d sets x %s reps)", res.Split, user.ID, res.Scheme.Sets, res.Scheme.Reps)
	return days, nil
}

func (s *planService) getUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return user, nil
}

func applyPlanInput(plan *domain.WorkoutPlan, input PlanInput) {
	plan.WorkoutType = input.WorkoutType
	if plan.WorkoutType == "" {
		plan.WorkoutType = domain.DefaultWorkoutType
	}
	plan.SessionsPerWeek = input.SessionsPerWeek
	plan.HoursPerSession = input.HoursPerSession
}
