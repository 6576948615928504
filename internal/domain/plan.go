package domain

import "time"

// DefaultWorkoutType is used when a plan is created without a workout type.
const DefaultWorkoutType = "gym"

// WorkoutPlan holds a user's high-level training parameters. A user has at most one.
type WorkoutPlan struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	WorkoutType     string    `json:"workout_type"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	HoursPerSession float64   `json:"hours_per_session"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
