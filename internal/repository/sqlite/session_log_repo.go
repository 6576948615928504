package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"fmt"
	"time"
)

type sqliteSessionLogRepository struct {
	db *sql.DB
}

// NewSessionLogRepository creates a new session log repository backed by SQLite.
func NewSessionLogRepository(db *sql.DB) repository.SessionLogRepository {
	return &sqliteSessionLogRepository{db: db}
}

func (r *sqliteSessionLogRepository) Create(ctx context.Context, log *domain.WorkoutSessionLog) (int64, error) {
	log.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO workout_session_logs (user_id, exercise_id, date, sets, reps, weight_kg, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.UserID, log.ExerciseID, log.Date.Format(domain.DateLayout), log.Sets, log.Reps, log.WeightKG,
		log.Notes, formatTimestamp(log.CreatedAt),
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	log.ID = id
	return id, nil
}

func (r *sqliteSessionLogRepository) ListByUserAndDate(ctx context.Context, userID int64, date time.Time) ([]domain.WorkoutSessionLog, error) {
	return r.query(
		ctx,
		`SELECT id, user_id, exercise_id, date, sets, reps, weight_kg, COALESCE(notes, ''), created_at
			FROM workout_session_logs
			WHERE user_id = ? AND date = ?
			ORDER BY id`,
		userID, date.Format(domain.DateLayout),
	)
}

func (r *sqliteSessionLogRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WorkoutSessionLog, error) {
	return r.query(
		ctx,
		`SELECT id, user_id, exercise_id, date, sets, reps, weight_kg, COALESCE(notes, ''), created_at
			FROM workout_session_logs
			WHERE user_id = ?
			ORDER BY date, id`,
		userID,
	)
}

func (r *sqliteSessionLogRepository) Delete(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_session_logs WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sqliteSessionLogRepository) query(ctx context.Context, query string, args ...any) ([]domain.WorkoutSessionLog, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []domain.WorkoutSessionLog{}
	for rows.Next() {
		var (
			l               domain.WorkoutSessionLog
			date, createdAt string
		)
		if err := rows.Scan(&l.ID, &l.UserID, &l.ExerciseID, &date, &l.Sets, &l.Reps, &l.WeightKG, &l.Notes, &createdAt); err != nil {
			return nil, err
		}
		if l.Date, err = time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("parse log date %q: %w", date, err)
		}
		if l.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
