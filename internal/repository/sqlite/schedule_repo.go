package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"fmt"
)

const dayExerciseSelect = `SELECT wde.id, wde.workout_day_id, wde.exercise_id, wde.sets, wde.reps,
		e.id, e.name, e.type, e.muscle_group_id
	FROM workout_day_exercises wde
	JOIN exercises e ON e.id = wde.exercise_id`

type sqliteScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository creates a new weekly schedule repository backed by SQLite.
func NewScheduleRepository(db *sql.DB) repository.ScheduleRepository {
	return &sqliteScheduleRepository{db: db}
}

func (r *sqliteScheduleRepository) ReplaceForUser(ctx context.Context, userID int64, days []domain.WorkoutDay) ([]domain.WorkoutDay, error) {
	saved := make([]domain.WorkoutDay, 0, len(days))
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_days WHERE user_id = ?`, userID); err != nil {
			return fmt.Errorf("delete days: %w", err)
		}

		for _, day := range days {
			day.UserID = userID
			res, err := tx.ExecContext(
				ctx,
				`INSERT INTO workout_days (user_id, day_of_week) VALUES (?, ?)`,
				userID, string(day.DayOfWeek),
			)
			if err != nil {
				return fmt.Errorf("insert day %s: %w", day.DayOfWeek, err)
			}
			if day.ID, err = res.LastInsertId(); err != nil {
				return err
			}

			items, err := insertDayExercises(ctx, tx, day.ID, day.Exercises)
			if err != nil {
				return err
			}
			day.Exercises = items
			saved = append(saved, day)
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (r *sqliteScheduleRepository) ListForUser(ctx context.Context, userID int64) ([]domain.WorkoutDay, error) {
	days, err := r.queryDays(ctx, `SELECT id, user_id, day_of_week FROM workout_days WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return days, nil
	}

	index := make(map[int64]int, len(days))
	ids := make([]int64, len(days))
	for i, d := range days {
		index[d.ID] = i
		ids[i] = d.ID
	}

	in, args := inClause(ids)
	items, err := r.queryDayExercises(ctx, dayExerciseSelect+` WHERE wde.workout_day_id IN (`+in+`) ORDER BY wde.id`, args...)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		i := index[item.WorkoutDayID]
		days[i].Exercises = append(days[i].Exercises, item)
	}
	return days, nil
}

func (r *sqliteScheduleRepository) GetDay(ctx context.Context, dayID int64) (*domain.WorkoutDay, error) {
	days, err := r.queryDays(ctx, `SELECT id, user_id, day_of_week FROM workout_days WHERE id = ?`, dayID)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, repository.ErrNotFound
	}

	day := days[0]
	day.Exercises, err = r.queryDayExercises(ctx, dayExerciseSelect+` WHERE wde.workout_day_id = ? ORDER BY wde.id`, dayID)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *sqliteScheduleRepository) ReplaceDayExercises(ctx context.Context, dayID int64, items []domain.WorkoutDayExercise) ([]domain.WorkoutDayExercise, error) {
	var saved []domain.WorkoutDayExercise
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_day_exercises WHERE workout_day_id = ?`, dayID); err != nil {
			return fmt.Errorf("delete day exercises: %w", err)
		}
		var err error
		saved, err = insertDayExercises(ctx, tx, dayID, items)
		return err
	})
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (r *sqliteScheduleRepository) AddDayExercise(ctx context.Context, item *domain.WorkoutDayExercise) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO workout_day_exercises (workout_day_id, exercise_id, sets, reps) VALUES (?, ?, ?, ?)`,
		item.WorkoutDayID, item.ExerciseID, item.Sets, item.Reps,
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	item.ID = id
	return id, nil
}

func (r *sqliteScheduleRepository) GetDayExercise(ctx context.Context, id int64) (*domain.WorkoutDayExercise, error) {
	items, err := r.queryDayExercises(ctx, dayExerciseSelect+` WHERE wde.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &items[0], nil
}

func (r *sqliteScheduleRepository) UpdateDayExerciseScheme(ctx context.Context, id int64, sets int, reps string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE workout_day_exercises SET sets = ?, reps = ? WHERE id = ?`, sets, reps, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sqliteScheduleRepository) UpdateDayExerciseExercise(ctx context.Context, id, exerciseID int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE workout_day_exercises SET exercise_id = ? WHERE id = ?`, exerciseID, id)
	if err != nil {
		return mapError(err)
	}
	return requireAffected(res)
}

func (r *sqliteScheduleRepository) DeleteDayExercise(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workout_day_exercises WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *sqliteScheduleRepository) queryDays(ctx context.Context, query string, args ...any) ([]domain.WorkoutDay, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []domain.WorkoutDay{}
	for rows.Next() {
		var (
			d   domain.WorkoutDay
			day string
		)
		if err := rows.Scan(&d.ID, &d.UserID, &day); err != nil {
			return nil, err
		}
		d.DayOfWeek = domain.Weekday(day)
		d.Exercises = []domain.WorkoutDayExercise{}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *sqliteScheduleRepository) queryDayExercises(ctx context.Context, query string, args ...any) ([]domain.WorkoutDayExercise, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.WorkoutDayExercise{}
	for rows.Next() {
		var (
			item         domain.WorkoutDayExercise
			e            domain.Exercise
			exerciseType string
		)
		if err := rows.Scan(
			&item.ID, &item.WorkoutDayID, &item.ExerciseID, &item.Sets, &item.Reps,
			&e.ID, &e.Name, &exerciseType, &e.MuscleGroupID,
		); err != nil {
			return nil, err
		}
		e.Type = domain.ExerciseType(exerciseType)
		item.Exercise = &e
		items = append(items, item)
	}
	return items, rows.Err()
}

func insertDayExercises(ctx context.Context, tx *sql.Tx, dayID int64, items []domain.WorkoutDayExercise) ([]domain.WorkoutDayExercise, error) {
	saved := make([]domain.WorkoutDayExercise, 0, len(items))
	for _, item := range items {
		item.WorkoutDayID = dayID
		res, err := tx.ExecContext(
			ctx,
			`INSERT INTO workout_day_exercises (workout_day_id, exercise_id, sets, reps) VALUES (?, ?, ?, ?)`,
			dayID, item.ExerciseID, item.Sets, item.Reps,
		)
		if err != nil {
			return nil, fmt.Errorf("insert exercise %d: %w", item.ExerciseID, err)
		}
		if item.ID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
		saved = append(saved, item)
	}
	return saved, nil
}

