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

type pgTemplateRepository struct {
	db *pgxpool.Pool
}

// NewTemplateRepository creates a new workout template repository backed by PostgreSQL.
func NewTemplateRepository(db *pgxpool.Pool) repository.TemplateRepository {
	return &pgTemplateRepository{db: db}
}

func (r *pgTemplateRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workout_templates;`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *pgTemplateRepository) Create(ctx context.Context, name string, exerciseIDs []int64) (*domain.WorkoutTemplate, error) {
	template := domain.WorkoutTemplate{Name: name}
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_templates (name) VALUES ($1) RETURNING id;`,
			name,
		).Scan(&template.ID); err != nil {
			return err
		}

		for _, exerciseID := range exerciseIDs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO workout_template_exercises (template_id, exercise_id) VALUES ($1, $2);`,
				template.ID, exerciseID,
			); err != nil {
				return fmt.Errorf("link exercise %d: %w", exerciseID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &template, nil
}

func (r *pgTemplateRepository) List(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM workout_templates ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []domain.WorkoutTemplate{}
	for rows.Next() {
		var t domain.WorkoutTemplate
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *pgTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.WorkoutTemplate, error) {
	var t domain.WorkoutTemplate
	err := r.db.QueryRow(ctx, `SELECT id, name FROM workout_templates WHERE id = $1;`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.name, e.type, e.muscle_group_id
			FROM workout_template_exercises wte
			JOIN exercises e ON e.id = wte.exercise_id
			WHERE wte.template_id = $1
			ORDER BY wte.id;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t.Exercises = []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.MuscleGroupID); err != nil {
			return nil, err
		}
		t.Exercises = append(t.Exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}
