package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"errors"
	"time"
)

type sqliteWorkoutPlanRepository struct {
	db *sql.DB
}

// NewWorkoutPlanRepository creates a new WorkoutPlan repository backed by SQLite.
func NewWorkoutPlanRepository(db *sql.DB) repository.WorkoutPlanRepository {
	return &sqliteWorkoutPlanRepository{db: db}
}

func (r *sqliteWorkoutPlanRepository) Create(ctx context.Context, plan *domain.WorkoutPlan) (int64, error) {
	if plan.WorkoutType == "" {
		plan.WorkoutType = domain.DefaultWorkoutType
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO workout_plans (user_id, workout_type, sessions_per_week, hours_per_session, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
		plan.UserID, plan.WorkoutType, plan.SessionsPerWeek, plan.HoursPerSession,
		formatTimestamp(now), formatTimestamp(now),
	)
	if err != nil {
		return 0, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	plan.ID = id
	return id, nil
}

// GetByUserID returns the oldest plan of the user.
func (r *sqliteWorkoutPlanRepository) GetByUserID(ctx context.Context, userID int64) (*domain.WorkoutPlan, error) {
	var (
		p                    domain.WorkoutPlan
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, workout_type, sessions_per_week, hours_per_session, created_at, updated_at
			FROM workout_plans WHERE user_id = ?
			ORDER BY id LIMIT 1`,
		userID,
	).Scan(&p.ID, &p.UserID, &p.WorkoutType, &p.SessionsPerWeek, &p.HoursPerSession, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if p.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if p.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteWorkoutPlanRepository) Update(ctx context.Context, plan *domain.WorkoutPlan) error {
	if plan.WorkoutType == "" {
		plan.WorkoutType = domain.DefaultWorkoutType
	}
	plan.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(
		ctx,
		`UPDATE workout_plans
			SET workout_type = ?, sessions_per_week = ?, hours_per_session = ?, updated_at = ?
			WHERE id = ?`,
		plan.WorkoutType, plan.SessionsPerWeek, plan.HoursPerSession, formatTimestamp(plan.UpdatedAt), plan.ID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
