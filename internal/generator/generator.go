// Package generator builds a weekly workout schedule from a user's goal and
// the number of sessions they train per week.
package generator

import (
	"alcyxob/fitness-planner/internal/domain"
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ExerciseFinder looks up library exercises belonging to any of the named groups.
type ExerciseFinder interface {
	ListExercisesByGroupNames(ctx context.Context, groupNames []string) ([]domain.Exercise, error)
}

// Result is a generated week ready to be persisted.
type Result struct {
	Split  string
	Scheme Scheme
	Days   []domain.WorkoutDay
}

type Generator struct {
	finder ExerciseFinder
	src    Source
}

// New creates a generator. A nil src falls back to RuntimeSource.
func New(finder ExerciseFinder, src Source) *Generator {
	if src == nil {
		src = RuntimeSource
	}
	return &Generator{
		finder: finder,
		src:    src,
	}
}

// Generate returns seven WorkoutDays in Monday..Sunday order. Rest days and
// days whose groups have no exercises carry no assignments.
func (g *Generator) Generate(ctx context.Context, sessionsPerWeek, goal int) (*Result, error) {
	split := SplitFor(sessionsPerWeek)
	scheme := SchemeForGoal(goal)

	candidates := make(map[string][]domain.Exercise)
	days := make([]domain.WorkoutDay, 0, len(split.Days))
	for _, plan := range split.Days {
		day := domain.WorkoutDay{
			DayOfWeek: plan.Day,
			Exercises: []domain.WorkoutDayExercise{},
		}
		if plan.IsRest() {
			days = append(days, day)
			continue
		}

		key := strings.Join(plan.Groups, ",")
		available, ok := candidates[key]
		if !ok {
			var err error
			available, err = g.finder.ListExercisesByGroupNames(ctx, plan.Groups)
			if err != nil {
				return nil, fmt.Errorf("list exercises for %s: %w", key, err)
			}
			candidates[key] = available
		}
		if len(available) == 0 {
			log.Warnf("no exercises available for groups [%s], %s stays empty", key, plan.Day)
		}

		for _, e := range Sample(g.src, available, plan.Count) {
			exercise := e
			day.Exercises = append(day.Exercises, domain.WorkoutDayExercise{
				ExerciseID: exercise.ID,
				Sets:       scheme.Sets,
				Reps:       scheme.Reps,
				Exercise:   &exercise,
			})
		}
		days = append(days, day)
	}

	return &Result{
		Split:  split.Name,
		Scheme: scheme,
		Days:   days,
	}, nil
}
