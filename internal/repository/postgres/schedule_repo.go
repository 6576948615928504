package postgres

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dayExerciseColumns = `wde.id, wde.workout_day_id, wde.exercise_id, wde.sets, wde.reps,
	e.id, e.name, e.type, e.muscle_group_id`

// pgScheduleRepository implements repository.ScheduleRepository
type pgScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new weekly schedule repository backed by PostgreSQL.
func NewScheduleRepository(db *pgxpool.Pool) repository.ScheduleRepository {
	return &pgScheduleRepository{db: db}
}

func (r *pgScheduleRepository) ReplaceForUser(ctx context.Context, userID int64, days []domain.WorkoutDay) ([]domain.WorkoutDay, error) {
	saved := make([]domain.WorkoutDay, 0, len(days))
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM workout_days WHERE user_id = $1;`, userID); err != nil {
			return fmt.Errorf("delete days: %w", err)
		}

		for _, day := range days {
			day.UserID = userID
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO workout_days (user_id, day_of_week) VALUES ($1, $2) RETURNING id;`,
				userID, day.DayOfWeek,
			).Scan(&day.ID); err != nil {
				return fmt.Errorf("insert day %s: %w", day.DayOfWeek, err)
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

func (r *pgScheduleRepository) ListForUser(ctx context.Context, userID int64) ([]domain.WorkoutDay, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, day_of_week FROM workout_days WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []domain.WorkoutDay{}
	dayIDs := []int64{}
	for rows.Next() {
		var d domain.WorkoutDay
		if err := rows.Scan(&d.ID, &d.UserID, &d.DayOfWeek); err != nil {
			return nil, err
		}
		d.Exercises = []domain.WorkoutDayExercise{}
		days = append(days, d)
		dayIDs = append(dayIDs, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return days, nil
	}

	items, err := r.queryDayExercises(
		ctx,
		`SELECT `+dayExerciseColumns+`
			FROM workout_day_exercises wde
			JOIN exercises e ON e.id = wde.exercise_id
			WHERE wde.workout_day_id = ANY($1)
			ORDER BY wde.id;`,
		dayIDs,
	)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]int, len(days))
	for i, d := range days {
		index[d.ID] = i
	}
	for _, item := range items {
		i := index[item.WorkoutDayID]
		days[i].Exercises = append(days[i].Exercises, item)
	}
	return days, nil
}

func (r *pgScheduleRepository) GetDay(ctx context.Context, dayID int64) (*domain.WorkoutDay, error) {
	var d domain.WorkoutDay
	err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, day_of_week FROM workout_days WHERE id = $1;`,
		dayID,
	).Scan(&d.ID, &d.UserID, &d.DayOfWeek)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	items, err := r.queryDayExercises(
		ctx,
		`SELECT `+dayExerciseColumns+`
			FROM workout_day_exercises wde
			JOIN exercises e ON e.id = wde.exercise_id
			WHERE wde.workout_day_id = $1
			ORDER BY wde.id;`,
		dayID,
	)
	if err != nil {
		return nil, err
	}
	d.Exercises = items
	return &d, nil
}

func (r *pgScheduleRepository) ReplaceDayExercises(ctx context.Context, dayID int64, items []domain.WorkoutDayExercise) ([]domain.WorkoutDayExercise, error) {
	var saved []domain.WorkoutDayExercise
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM workout_day_exercises WHERE workout_day_id = $1;`, dayID); err != nil {
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

func (r *pgScheduleRepository) AddDayExercise(ctx context.Context, item *domain.WorkoutDayExercise) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_day_exercises (workout_day_id, exercise_id, sets, reps)
			VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		item.WorkoutDayID, item.ExerciseID, item.Sets, item.Reps,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	item.ID = id
	return id, nil
}

func (r *pgScheduleRepository) GetDayExercise(ctx context.Context, id int64) (*domain.WorkoutDayExercise, error) {
	items, err := r.queryDayExercises(
		ctx,
		`SELECT `+dayExerciseColumns+`
			FROM workout_day_exercises wde
			JOIN exercises e ON e.id = wde.exercise_id
			WHERE wde.id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &items[0], nil
}

func (r *pgScheduleRepository) UpdateDayExerciseScheme(ctx context.Context, id int64, sets int, reps string) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_day_exercises SET sets = $1, reps = $2 WHERE id = $3;`,
		sets, reps, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgScheduleRepository) UpdateDayExerciseExercise(ctx context.Context, id, exerciseID int64) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_day_exercises SET exercise_id = $1 WHERE id = $2;`,
		exerciseID, id,
	)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgScheduleRepository) DeleteDayExercise(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM workout_day_exercises WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgScheduleRepository) queryDayExercises(ctx context.Context, sql string, args ...any) ([]domain.WorkoutDayExercise, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.WorkoutDayExercise{}
	for rows.Next() {
		var (
			item domain.WorkoutDayExercise
			e    domain.Exercise
		)
		if err := rows.Scan(
			&item.ID, &item.WorkoutDayID, &item.ExerciseID, &item.Sets, &item.Reps,
			&e.ID, &e.Name, &e.Type, &e.MuscleGroupID,
		); err != nil {
			return nil, err
		}
		item.Exercise = &e
		items = append(items, item)
	}
	return items, rows.Err()
}

func insertDayExercises(ctx context.Context, tx pgx.Tx, dayID int64, items []domain.WorkoutDayExercise) ([]domain.WorkoutDayExercise, error) {
	saved := make([]domain.WorkoutDayExercise, 0, len(items))
	for _, item := range items {
		item.WorkoutDayID = dayID
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_day_exercises (workout_day_id, exercise_id, sets, reps)
				VALUES ($1, $2, $3, $4)
				RETURNING id;`,
			dayID, item.ExerciseID, item.Sets, item.Reps,
		).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("insert exercise %d: %w", item.ExerciseID, err)
		}
		saved = append(saved, item)
	}
	return saved, nil
}
