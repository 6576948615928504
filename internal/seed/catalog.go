package seed

import "alcyxob/fitness-planner/internal/domain"

type catalogExercise struct {
	Name string
	Type domain.ExerciseType
}

type catalogGroup struct {
	Name      string
	Exercises []catalogExercise
}

type catalogTemplate struct {
	Name      string
	Exercises []string
}

const (
	compound  = domain.ExerciseCompound
	isolation = domain.ExerciseIsolation
	cardio    = domain.ExerciseCardio
)

var library = []catalogGroup{
	{Name: "Chest", Exercises: []catalogExercise{
		{"Bench Press", compound},
		{"Incline Dumbbell Press", compound},
		{"Dumbbell Flyes", isolation},
		{"Push-ups", compound},
		{"Cable Crossovers", isolation},
	}},
	{Name: "Back", Exercises: []catalogExercise{
		{"Deadlifts", compound},
		{"Pull-ups", compound},
		{"Bent-Over Barbell Rows", compound},
		{"Lat Pulldowns", compound},
		{"Seated Cable Rows", compound},
	}},
	{Name: "Legs", Exercises: []catalogExercise{
		{"Squats", compound},
		{"Leg Press", compound},
		{"Lunges", compound},
		{"Leg Curls", isolation},
		{"Leg Extensions", isolation},
		{"Calf Raises", isolation},
	}},
	{Name: "Shoulders", Exercises: []catalogExercise{
		{"Overhead Press", compound},
		{"Dumbbell Lateral Raises", isolation},
		{"Face Pulls", isolation},
		{"Arnold Press", compound},
	}},
	{Name: "Biceps", Exercises: []catalogExercise{
		{"Barbell Curls", isolation},
		{"Dumbbell Hammer Curls", isolation},
		{"Preacher Curls", isolation},
	}},
	{Name: "Triceps", Exercises: []catalogExercise{
		{"Tricep Dips", compound},
		{"Skull Crushers", isolation},
		{"Tricep Pushdowns", isolation},
	}},
	{Name: "Abs", Exercises: []catalogExercise{
		{"Crunches", isolation},
		{"Leg Raises", isolation},
		{"Plank", isolation},
	}},
	{Name: "Cardio", Exercises: []catalogExercise{
		{"Treadmill Running", cardio},
		{"Cycling", cardio},
		{"Jump Rope", cardio},
	}},
}

var templates = []catalogTemplate{
	{Name: "Push Day", Exercises: []string{
		"Bench Press", "Overhead Press", "Incline Dumbbell Press", "Tricep Dips", "Dumbbell Lateral Raises",
	}},
	{Name: "Pull Day", Exercises: []string{
		"Deadlifts", "Pull-ups", "Bent-Over Barbell Rows", "Lat Pulldowns", "Barbell Curls",
	}},
	{Name: "Leg Day", Exercises: []string{
		"Squats", "Leg Press", "Lunges", "Leg Curls", "Calf Raises",
	}},
	{Name: "Chest Focus", Exercises: []string{
		"Bench Press", "Incline Dumbbell Press", "Dumbbell Flyes", "Push-ups", "Cable Crossovers",
	}},
	{Name: "Back Focus", Exercises: []string{
		"Pull-ups", "Bent-Over Barbell Rows", "Seated Cable Rows", "Lat Pulldowns", "Face Pulls",
	}},
}
