package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type sqliteTemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository creates a new workout template repository backed by SQLite.
func NewTemplateRepository(db *sql.DB) repository.TemplateRepository {
	return &sqliteTemplateRepository{db: db}
}

func (r *sqliteTemplateRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workout_templates`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sqliteTemplateRepository) Create(ctx context.Context, name string, exerciseIDs []int64) (*domain.WorkoutTemplate, error) {
	template := domain.WorkoutTemplate{Name: name}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO workout_templates (name) VALUES (?)`, name)
		if err != nil {
			return err
		}
		if template.ID, err = res.LastInsertId(); err != nil {
			return err
		}

		for _, exerciseID := range exerciseIDs {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO workout_template_exercises (template_id, exercise_id) VALUES (?, ?)`,
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

func (r *sqliteTemplateRepository) List(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM workout_templates ORDER BY id`)
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

func (r *sqliteTemplateRepository) GetByID(ctx context.Context, id int64) (*domain.WorkoutTemplate, error) {
	var t domain.WorkoutTemplate
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM workout_templates WHERE id = ?`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	t.Exercises, err = queryExercises(
		ctx, r.db,
		`SELECT e.id, e.name, e.type, e.muscle_group_id
			FROM workout_template_exercises wte
			JOIN exercises e ON e.id = wte.exercise_id
			WHERE wte.template_id = ?
			ORDER BY wte.id`,
		id,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
