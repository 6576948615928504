package domain

// ExerciseType classifies a library exercise.
type ExerciseType string

const (
	ExerciseCompound  ExerciseType = "Compound"
	ExerciseIsolation ExerciseType = "Isolation"
	ExerciseCardio    ExerciseType = "Cardio"
)

// MuscleGroup is a named grouping of library exercises.
type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exercise is an entry of the reference library. Every exercise belongs to
// exactly one muscle group.
type Exercise struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Type          ExerciseType `json:"type"`
	MuscleGroupID int64        `json:"muscle_group_id"`
}

// WorkoutTemplate is a reusable named list of exercises that can replace the
// exercises of a single workout day.
type WorkoutTemplate struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises,omitempty"`
}
