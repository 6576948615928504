package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves manual edits of a weekly schedule.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// --- DTOs ---

type AddDayExerciseRequest struct {
	ExerciseID int64  `json:"exercise_id" binding:"required"`
	Sets       int    `json:"sets"`
	Reps       string `json:"reps" binding:"required"`
}

type UpdateDayExerciseRequest struct {
	Sets int    `json:"sets"`
	Reps string `json:"reps" binding:"required"`
}

type ChangeExerciseRequest struct {
	NewExerciseID int64 `json:"new_exercise_id" binding:"required"`
}

// SwapTemplateRequest carries the user whose goal decides the set/rep scheme.
type SwapTemplateRequest struct {
	TemplateID int64 `json:"template_id" binding:"required"`
	UserID     int64 `json:"user_id" binding:"required"`
}

type DayExerciseResponse struct {
	ID           int64            `json:"id"`
	WorkoutDayID int64            `json:"workout_day_id"`
	ExerciseID   int64            `json:"exercise_id"`
	Sets         int              `json:"sets"`
	Reps         string           `json:"reps"`
	Exercise     ExerciseResponse `json:"exercise"`
}

type WorkoutDayResponse struct {
	ID        int64                 `json:"id"`
	DayOfWeek string                `json:"day_of_week"`
	Exercises []DayExerciseResponse `json:"exercises"`
}

func MapDayExerciseToResponse(item *domain.WorkoutDayExercise) DayExerciseResponse {
	return DayExerciseResponse{
		ID:           item.ID,
		WorkoutDayID: item.WorkoutDayID,
		ExerciseID:   item.ExerciseID,
		Sets:         item.Sets,
		Reps:         item.Reps,
		Exercise:     MapExerciseToResponse(item.Exercise),
	}
}

func MapDayExercisesToResponse(items []domain.WorkoutDayExercise) []DayExerciseResponse {
	responses := make([]DayExerciseResponse, len(items))
	for i := range items {
		responses[i] = MapDayExerciseToResponse(&items[i])
	}
	return responses
}

func MapWorkoutDayToResponse(day *domain.WorkoutDay) WorkoutDayResponse {
	return WorkoutDayResponse{
		ID:        day.ID,
		DayOfWeek: string(day.DayOfWeek),
		Exercises: MapDayExercisesToResponse(day.Exercises),
	}
}

// MapWeeklySchedule keys the days by their day name.
func MapWeeklySchedule(days []domain.WorkoutDay) map[string]WorkoutDayResponse {
	schedule := make(map[string]WorkoutDayResponse, len(days))
	for i := range days {
		schedule[string(days[i].DayOfWeek)] = MapWorkoutDayToResponse(&days[i])
	}
	return schedule
}

// --- Handler Methods ---

// SwapTemplate handles PUT /workout-day/:id/swap-template.
func (h *ScheduleHandler) SwapTemplate(c *gin.Context) {
	dayID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req SwapTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	items, err := h.scheduleService.SwapTemplate(c.Request.Context(), dayID, req.TemplateID, req.UserID)
	if err != nil {
		respondWithServiceError(c, err, "swap template")
		return
	}
	c.JSON(http.StatusOK, MapDayExercisesToResponse(items))
}

// AddExercise handles POST /workout-day/:id/exercises.
func (h *ScheduleHandler) AddExercise(c *gin.Context) {
	dayID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req AddDayExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.scheduleService.AddExercise(c.Request.Context(), dayID, req.ExerciseID, req.Sets, req.Reps)
	if err != nil {
		respondWithServiceError(c, err, "add exercise to workout day")
		return
	}
	c.JSON(http.StatusCreated, MapDayExerciseToResponse(item))
}

// UpdateExercise handles PUT /workout-day-exercise/:id.
func (h *ScheduleHandler) UpdateExercise(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateDayExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.scheduleService.UpdateExercise(c.Request.Context(), itemID, req.Sets, req.Reps)
	if err != nil {
		respondWithServiceError(c, err, "update exercise in plan")
		return
	}
	c.JSON(http.StatusOK, MapDayExerciseToResponse(item))
}

// ChangeExercise handles PUT /workout-day-exercise/:id/change-exercise.
// Sets and reps are kept.
func (h *ScheduleHandler) ChangeExercise(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ChangeExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := h.scheduleService.ChangeExercise(c.Request.Context(), itemID, req.NewExerciseID)
	if err != nil {
		respondWithServiceError(c, err, "change exercise in plan")
		return
	}
	c.JSON(http.StatusOK, MapDayExerciseToResponse(item))
}

// RemoveExercise handles DELETE /workout-day-exercise/:id.
func (h *ScheduleHandler) RemoveExercise(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleService.RemoveExercise(c.Request.Context(), itemID); err != nil {
		respondWithServiceError(c, err, "remove exercise from plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Exercise removed successfully"})
}
