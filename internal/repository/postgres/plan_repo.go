package postgres

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgWorkoutPlanRepository struct {
	db *pgxpool.Pool
}

// NewWorkoutPlanRepository creates a new WorkoutPlan repository backed by PostgreSQL.
func NewWorkoutPlanRepository(db *pgxpool.Pool) repository.WorkoutPlanRepository {
	return &pgWorkoutPlanRepository{db: db}
}

func (r *pgWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (int64, error) {
	if plan.WorkoutType == "" {
		plan.WorkoutType = domain.DefaultWorkoutType
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_plans
				(user_id, workout_type, sessions_per_week, hours_per_session, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		plan.UserID, plan.WorkoutType, plan.SessionsPerWeek, plan.HoursPerSession, now, now,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	plan.ID = id
	return id, nil
}

// GetByUserID returns the oldest plan of the user.
func (r *pgWorkoutPlanRepository) GetByUserID(ctx context.Context, userID int64) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, workout_type, sessions_per_week, hours_per_session, created_at, updated_at
			FROM workout_plans WHERE user_id = $1
			ORDER BY id LIMIT 1;`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.WorkoutType, &p.SessionsPerWeek, &p.HoursPerSession, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *pgWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.WorkoutType == "" {
		plan.WorkoutType = domain.DefaultWorkoutType
	}
	plan.UpdatedAt = time.Now().UTC()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plans
			SET workout_type = $1, sessions_per_week = $2, hours_per_session = $3, updated_at = $4
			WHERE id = $5;`,
		plan.WorkoutType, plan.SessionsPerWeek, plan.HoursPerSession, plan.UpdatedAt, plan.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
