package domain

import "time"

// DateLayout is the wire and storage format of session log dates.
const DateLayout = "2006-01-02"

// WorkoutSessionLog records one performed set. Sets holds the set index
// (1, 2, 3...), not a count.
type WorkoutSessionLog struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ExerciseID int64     `json:"exercise_id"`
	Date       time.Time `json:"date"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	WeightKG   float64   `json:"weight_kg"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
