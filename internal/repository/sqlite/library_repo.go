package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"errors"
)

type sqliteLibraryRepository struct {
	db *sql.DB
}

// NewLibraryRepository creates a new exercise library repository backed by SQLite.
func NewLibraryRepository(db *sql.DB) repository.LibraryRepository {
	return &sqliteLibraryRepository{db: db}
}

func (r *sqliteLibraryRepository) CountMuscleGroups(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM muscle_groups`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sqliteLibraryRepository) CreateMuscleGroup(ctx context.Context, name string) (*domain.MuscleGroup, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO muscle_groups (name) VALUES (?)`, name)
	if err != nil {
		return nil, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.MuscleGroup{ID: id, Name: name}, nil
}

func (r *sqliteLibraryRepository) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM muscle_groups ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.MuscleGroup{}
	for rows.Next() {
		var g domain.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *sqliteLibraryRepository) CreateExercise(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO exercises (name, type, muscle_group_id) VALUES (?, ?, ?)`,
		exercise.Name, string(exercise.Type), exercise.MuscleGroupID,
	)
	if err != nil {
		return 0, mapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	exercise.ID = id
	return id, nil
}

func (r *sqliteLibraryRepository) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	var (
		e            domain.Exercise
		exerciseType string
	)
	err := r.db.QueryRowContext(
		ctx,
		`SELECT id, name, type, muscle_group_id FROM exercises WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Name, &exerciseType, &e.MuscleGroupID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e.Type = domain.ExerciseType(exerciseType)
	return &e, nil
}

func (r *sqliteLibraryRepository) ListExercises(ctx context.Context, muscleGroupIDs []int64) ([]domain.Exercise, error) {
	if len(muscleGroupIDs) == 0 {
		return queryExercises(ctx, r.db, `SELECT id, name, type, muscle_group_id FROM exercises ORDER BY id`)
	}
	in, args := inClause(muscleGroupIDs)
	return queryExercises(
		ctx, r.db,
		`SELECT id, name, type, muscle_group_id FROM exercises
			WHERE muscle_group_id IN (`+in+`)
			ORDER BY id`,
		args...,
	)
}

func (r *sqliteLibraryRepository) ListExercisesByGroupNames(ctx context.Context, groupNames []string) ([]domain.Exercise, error) {
	if len(groupNames) == 0 {
		return []domain.Exercise{}, nil
	}
	in, args := inClause(groupNames)
	return queryExercises(
		ctx, r.db,
		`SELECT e.id, e.name, e.type, e.muscle_group_id
			FROM exercises e
			JOIN muscle_groups mg ON mg.id = e.muscle_group_id
			WHERE mg.name IN (`+in+`)
			ORDER BY e.id`,
		args...,
	)
}

// queryExercises scans rows of (id, name, type, muscle_group_id).
func queryExercises(ctx context.Context, db *sql.DB, query string, args ...any) ([]domain.Exercise, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var (
			e            domain.Exercise
			exerciseType string
		)
		if err := rows.Scan(&e.ID, &e.Name, &exerciseType, &e.MuscleGroupID); err != nil {
			return nil, err
		}
		e.Type = domain.ExerciseType(exerciseType)
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
