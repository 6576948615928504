package service

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/repository"
	"context"
)

// LibraryService exposes the read-only exercise library and templates.
type LibraryService interface {
	// ListExercises returns all exercises, or those of the given muscle groups.
	ListExercises(ctx context.Context, muscleGroupIDs []int64) ([]domain.Exercise, error)
	ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error)
	ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, templateID int64) (*domain.WorkoutTemplate, error)
}

type libraryService struct {
	libraryRepo  repository.LibraryRepository
	templateRepo repository.TemplateRepository
}

func NewLibraryService(libraryRepo repository.LibraryRepository, templateRepo repository.TemplateRepository) LibraryService {
	return &libraryService{
		libraryRepo:  libraryRepo,
		templateRepo: templateRepo,
	}
}

func (s *libraryService) ListExercises(ctx context.Context, muscleGroupIDs []int64) ([]domain.Exercise, error) {
	return s.libraryRepo.ListExercises(ctx, muscleGroupIDs)
}

func (s *libraryService) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	return s.libraryRepo.ListMuscleGroups(ctx)
}

func (s *libraryService) ListTemplates(ctx context.Context) ([]domain.WorkoutTemplate, error) {
	return s.templateRepo.List(ctx)
}

func (s *libraryService) GetTemplate(ctx context.Context, templateID int64) (*domain.WorkoutTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, notFoundAs(err, ErrTemplateNotFound)
	}
	return template, nil
}
