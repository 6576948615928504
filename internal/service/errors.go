package service

import (
	"alcyxob/fitness-planner/internal/repository"
	"errors"
)

// --- Error Definitions ---
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrPlanNotFound        = errors.New("workout plan not found")
	ErrWorkoutDayNotFound  = errors.New("workout day not found")
	ErrDayExerciseNotFound = errors.New("exercise in plan not found")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrTemplateNotFound    = errors.New("workout template not found")
	ErrSessionLogNotFound  = errors.New("log entry not found or user mismatch")
	ErrInvalidInput        = errors.New("invalid input")
	ErrExportDisabled      = errors.New("session log export is not configured")
)

// notFoundAs swaps repository.ErrNotFound for the given service error.
func notFoundAs(err, target error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return target
	}
	return err
}
