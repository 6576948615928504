package postgres

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type pgSessionLogRepository struct {
	db *pgxpool.Pool
}

// NewSessionLogRepository creates a new session log repository backed by PostgreSQL.
func NewSessionLogRepository(db *pgxpool.Pool) repository.SessionLogRepository {
	return &pgSessionLogRepository{db: db}
}

// Create returns ErrNotFound when the user or exercise is missing.
func (r *pgSessionLogRepository) Create(ctx context.Context, log *domain.WorkoutSessionLog) (int64, error) {
	log.CreatedAt = time.Now().UTC()

	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session_logs
				(user_id, exercise_id, date, sets, reps, weight_kg, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		log.UserID, log.ExerciseID, log.Date, log.Sets, log.Reps, log.WeightKG, log.Notes, log.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	log.ID = id
	return id, nil
}

func (r *pgSessionLogRepository) ListByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]domain.WorkoutSessionLog, error) {
	return r.query(
		ctx,
		`SELECT id, user_id, exercise_id, date, sets, reps, weight_kg, COALESCE(notes, ''), created_at
			FROM workout_session_logs
			WHERE user_id = $1 AND date = $2
			ORDER BY id;`,
		userID, date,
	)
}

func (r *pgSessionLogRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WorkoutSessionLog, error) {
	return r.query(
		ctx,
		`SELECT id, user_id, exercise_id, date, sets, reps, weight_kg, COALESCE(notes, ''), created_at
			FROM workout_session_logs
			WHERE user_id = $1
			ORDER BY date, id;`,
		userID,
	)
}

func (r *pgSessionLogRepository) Delete(ctx context.Context, id, userID int64) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_session_logs WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgSessionLogRepository) query(ctx context.Context, sql string, args ...any) ([]domain.WorkoutSessionLog, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []domain.WorkoutSessionLog{}
	for rows.Next() {
		var l domain.WorkoutSessionLog
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.ExerciseID, &l.Date, &l.Sets, &l.Reps, &l.WeightKG, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
