package domain

// Weekday is the literal day name a WorkoutDay is scheduled on.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Week lists the days in schedule order.
var Week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Valid reports whether d is one of the seven day names.
func (d Weekday) Valid() bool {
	for _, day := range Week {
		if d == day {
			return true
		}
	}
	return false
}

// WorkoutDay is one day of a user's weekly schedule. Rest days have no exercises.
type WorkoutDay struct {
	ID        int64                `json:"id"`
	UserID    int64                `json:"user_id"`
	DayOfWeek Weekday              `json:"day_of_week"`
	Exercises []WorkoutDayExercise `json:"exercises"`
}

// IsRest reports whether nothing is scheduled on the day.
func (d *WorkoutDay) IsRest() bool {
	return len(d.Exercises) == 0
}

// WorkoutDayExercise assigns a library exercise to a day with a set/rep scheme.
// Reps is a string so ranges like "8-12" can be stored.
type WorkoutDayExercise struct {
	ID           int64     `json:"id"`
	WorkoutDayID int64     `json:"workout_day_id"`
	ExerciseID   int64     `json:"exercise_id"`
	Sets         int       `json:"sets"`
	Reps         string    `json:"reps"`
	Exercise     *Exercise `json:"exercise,omitempty"` // populated on reads
}
