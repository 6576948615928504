package sqlite

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"database/sql"
	"errors"
	"time"
)

type sqliteUserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new User repository backed by SQLite.
func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO users (username, age, height_cm, weight_kg, gender, body_type, goal, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.Age, user.HeightCM, user.WeightKG, user.Gender, user.BodyType, user.Goal,
		formatTimestamp(now), formatTimestamp(now),
	)
	if err != nil {
		return 0, mapError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	user.ID = id
	return id, nil
}

func (r *sqliteUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var (
		u                    domain.User
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(
		ctx,
		`SELECT id, username, age, height_cm, weight_kg, gender, body_type, goal, created_at, updated_at
			FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Username, &u.Age, &u.HeightCM, &u.WeightKG, &u.Gender, &u.BodyType, &u.Goal, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if u.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *sqliteUserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
