package postgres

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgLibraryRepository implements repository.LibraryRepository
type pgLibraryRepository struct {
	db *pgxpool.Pool
}

// NewLibraryRepository creates a new exercise library repository backed by PostgreSQL.
func NewLibraryRepository(db *pgxpool.Pool) repository.LibraryRepository {
	return &pgLibraryRepository{db: db}
}

func (r *pgLibraryRepository) CountMuscleGroups(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM muscle_groups;`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *pgLibraryRepository) CreateMuscleGroup(ctx context.Context, name string) (*domain.MuscleGroup, error) {
	group := domain.MuscleGroup{Name: name}
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO muscle_groups (name) VALUES ($1) RETURNING id;`,
		name,
	).Scan(&group.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &group, nil
}

func (r *pgLibraryRepository) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM muscle_groups ORDER BY id;`)
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

// CreateExercise returns ErrNotFound when the muscle group does not exist.
func (r *pgLibraryRepository) CreateExercise(ctx context.Context, exercise *domain.Exercise) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO exercises (name, type, muscle_group_id) VALUES ($1, $2, $3) RETURNING id;`,
		exercise.Name, exercise.Type, exercise.MuscleGroupID,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}
	exercise.ID = id
	return id, nil
}

func (r *pgLibraryRepository) GetExercise(ctx context.Context, id int64) (*domain.Exercise, error) {
	var e domain.Exercise
	err := r.db.QueryRow(
		ctx,
		`SELECT id, name, type, muscle_group_id FROM exercises WHERE id = $1;`,
		id,
	).Scan(&e.ID, &e.Name, &e.Type, &e.MuscleGroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *pgLibraryRepository) ListExercises(ctx context.Context, muscleGroupIDs []int64) ([]domain.Exercise, error) {
	if len(muscleGroupIDs) == 0 {
		return r.queryExercises(ctx, `SELECT id, name, type, muscle_group_id FROM exercises ORDER BY id;`)
	}
	return r.queryExercises(
		ctx,
		`SELECT id, name, type, muscle_group_id FROM exercises
			WHERE muscle_group_id = ANY($1)
			ORDER BY id;`,
		muscleGroupIDs,
	)
}

func (r *pgLibraryRepository) ListExercisesByGroupNames(ctx context.Context, groupNames []string) ([]domain.Exercise, error) {
	return r.queryExercises(
		ctx,
		`SELECT e.id, e.name, e.type, e.muscle_group_id
			FROM exercises e
			JOIN muscle_groups mg ON mg.id = e.muscle_group_id
			WHERE mg.name = ANY($1)
			ORDER BY e.id;`,
		groupNames,
	)
}

func (r *pgLibraryRepository) queryExercises(ctx context.Context, sql string, args ...any) ([]domain.Exercise, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.MuscleGroupID); err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}
