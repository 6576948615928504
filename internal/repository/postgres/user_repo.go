package postgres

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUserRepository implements repository.UserRepository
type pgUserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new User repository backed by PostgreSQL.
func NewUserRepository(db *pgxpool.Pool) repository.UserRepository {
	return &pgUserRepository{db: db}
}

// Create inserts a new user profile.
func (r *pgUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO users
				(username, age, height_cm, weight_kg, gender, body_type, goal, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		user.Username, user.Age, user.HeightCM, user.WeightKG, user.Gender, user.BodyType, user.Goal, now, now,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err)
	}

	user.ID = id
	return id, nil
}

// GetByID retrieves a user by its ID.
func (r *pgUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(
		ctx,
		`SELECT id, username, age, height_cm, weight_kg, gender, body_type, goal, created_at, updated_at
			FROM users WHERE id = $1;`,
		id,
	).Scan(&u.ID, &u.Username, &u.Age, &u.HeightCM, &u.WeightKG, &u.Gender, &u.BodyType, &u.Goal, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes a user. Foreign keys cascade to plans, days and logs.
func (r *pgUserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
