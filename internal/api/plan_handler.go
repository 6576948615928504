package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the workout plan of a user and its generated schedule.
type PlanHandler struct {
	planService service.PlanService
}

func NewPlanHandler(planService service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// PlanRequest is used for both creating and updating a plan. workout_type
// defaults to "gym".
type PlanRequest struct {
	WorkoutType     string  `json:"workout_type"`
	SessionsPerWeek int     `json:"sessions_per_week"`
	HoursPerSession float64 `json:"hours_per_session"`
}

type WorkoutPlanResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	WorkoutType     string    `json:"workout_type"`
	SessionsPerWeek int       `json:"sessions_per_week"`
	HoursPerSession float64   `json:"hours_per_session"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PlanResponse is the full plan view: the plan and its week keyed by day name.
type PlanResponse struct {
	PlanDetails    WorkoutPlanResponse           `json:"plan_details"`
	WeeklySchedule map[string]WorkoutDayResponse `json:"weekly_schedule"`
}

func MapPlanToResponse(plan *domain.WorkoutPlan) WorkoutPlanResponse {
	return WorkoutPlanResponse{
		ID:              plan.ID,
		UserID:          plan.UserID,
		WorkoutType:     plan.WorkoutType,
		SessionsPerWeek: plan.SessionsPerWeek,
		HoursPerSession: plan.HoursPerSession,
		UpdatedAt:       plan.UpdatedAt,
	}
}

func (r PlanRequest) toInput() service.PlanInput {
	return service.PlanInput{
		WorkoutType:     r.WorkoutType,
		SessionsPerWeek: r.SessionsPerWeek,
		HoursPerSession: r.HoursPerSession,
	}
}

// CreatePlan handles POST /users/:id/plan. An existing plan is updated, and in
// both cases the weekly schedule is generated from scratch.
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.planService.CreatePlan(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "create workout plan")
		return
	}
	c.JSON(http.StatusCreated, MapPlanToResponse(plan))
}

// UpdatePlan handles PUT /users/:id/plan.
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.planService.UpdatePlan(c.Request.Context(), userID, req.toInput())
	if err != nil {
		respondWithServiceError(c, err, "update workout plan")
		return
	}
	c.JSON(http.StatusOK, MapPlanToResponse(plan))
}

// RegeneratePlan handles POST /users/:id/plan/regenerate. Manual edits are lost.
func (h *PlanHandler) RegeneratePlan(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	days, err := h.planService.RegeneratePlan(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "regenerate workout plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly_schedule": MapWeeklySchedule(days)})
}

// GetPlan handles GET /users/:id/plan.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.planService.GetPlan(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "get workout plan")
		return
	}
	c.JSON(http.StatusOK, PlanResponse{
		PlanDetails:    MapPlanToResponse(view.Plan),
		WeeklySchedule: MapWeeklySchedule(view.Days),
	})
}
