// Package seed loads the reference exercise library and workout templates.
package seed

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Result summarises what a Run inserted.
type Result struct {
	MuscleGroups     int
	Exercises        int
	Templates        int
	SkippedExercises []string // template entries with no matching library exercise
	SkippedTemplates []string // templates none of whose exercises exist
}

type Seeder struct {
	library   repository.LibraryRepository
	templates repository.TemplateRepository
}

func NewSeeder(library repository.LibraryRepository, templates repository.TemplateRepository) *Seeder {
	return &Seeder{
		library:   library,
		templates: templates,
	}
}

// Run inserts the library and then the templates. Any existing muscle group
// means the store was seeded before, and nothing is touched. Running it again
// is a no-op.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	groupCount, err := s.library.CountMuscleGroups(ctx)
	if err != nil {
		return res, fmt.Errorf("count muscle groups: %w", err)
	}
	if groupCount > 0 {
		log.Debugf("exercise library already seeded (%d muscle groups), skipping", groupCount)
		return res, nil
	}

	if err := s.seedLibrary(ctx, &res); err != nil {
		return res, err
	}
	log.Infof("seeded %d muscle groups and %d exercises", res.MuscleGroups, res.Exercises)

	templateCount, err := s.templates.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("count templates: %w", err)
	}
	if templateCount > 0 {
		log.Debugf("workout templates already seeded (%d)", templateCount)
		return res, nil
	}

	if err := s.seedTemplates(ctx, &res); err != nil {
		return res, err
	}
	log.Infof("seeded %d workout templates", res.Templates)
	return res, nil
}

func (s *Seeder) seedLibrary(ctx context.Context, res *Result) error {
	for _, g := range library {
		group, err := s.library.CreateMuscleGroup(ctx, g.Name)
		if err != nil {
			return fmt.Errorf("create muscle group %s: %w", g.Name, err)
		}
		res.MuscleGroups++

		for _, e := range g.Exercises {
			exercise := &domain.Exercise{
				Name:          e.Name,
				Type:          e.Type,
				MuscleGroupID: group.ID,
			}
			if _, err := s.library.CreateExercise(ctx, exercise); err != nil {
				return fmt.Errorf("create exercise %s: %w", e.Name, err)
			}
			res.Exercises++
		}
	}
	return nil
}

func (s *Seeder) seedTemplates(ctx context.Context, res *Result) error {
	exercises, err := s.library.ListExercises(ctx, nil)
	if err != nil {
		return fmt.Errorf("list exercises: %w", err)
	}
	idByName := make(map[string]int64, len(exercises))
	for _, e := range exercises {
		idByName[e.Name] = e.ID
	}

	for _, t := range templates {
		ids := make([]int64, 0, len(t.Exercises))
		for _, name := range t.Exercises {
			id, ok := idByName[name]
			if !ok {
				log.Warnf("template %q: exercise %q not in library, skipping", t.Name, name)
				res.SkippedExercises = append(res.SkippedExercises, name)
				continue
			}
			ids = append(ids, id)
		}
		// an empty template would wipe a day on swap
		if len(ids) == 0 {
			log.Warnf("template %q: no exercise found in library, not created", t.Name)
			res.SkippedTemplates = append(res.SkippedTemplates, t.Name)
			continue
		}

		if _, err := s.templates.Create(ctx, t.Name, ids); err != nil {
			return fmt.Errorf("create template %s: %w", t.Name, err)
		}
		res.Templates++
	}
	return nil
}
