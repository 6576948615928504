package domain

import "time"

// Goal boundaries on the 1-9 training goal scale. Values outside the scale are
// accepted and fall into the nearest band.
const (
	GoalEnduranceMax   = 3
	GoalHypertrophyMax = 6
)

// User is a profile whose goal drives the set/rep scheme of generated plans.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"` // unique
	Age       int       `json:"age"`
	HeightCM  int       `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	Gender    string    `json:"gender"`
	BodyType  int       `json:"body_type"`
	Goal      int       `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
