package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionLogHandler serves performed-set logs.
type SessionLogHandler struct {
	logService service.SessionLogService
}

func NewSessionLogHandler(logService service.SessionLogService) *SessionLogHandler {
	return &SessionLogHandler{logService: logService}
}

// LogSetRequest records one set. sets is the set index, date is YYYY-MM-DD.
type LogSetRequest struct {
	UserID     int64   `json:"user_id" binding:"required"`
	ExerciseID int64   `json:"exercise_id" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKG   float64 `json:"weight_kg"`
	Notes      string  `json:"notes"`
}

type SessionLogResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	ExerciseID int64   `json:"exercise_id"`
	Date       string  `json:"date"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	WeightKG   float64 `json:"weight_kg"`
	Notes      string  `json:"notes,omitempty"`
}

func MapSessionLogToResponse(entry *domain.WorkoutSessionLog) SessionLogResponse {
	return SessionLogResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		ExerciseID: entry.ExerciseID,
		Date:       entry.Date.Format(domain.DateLayout),
		Sets:       entry.Sets,
		Reps:       entry.Reps,
		WeightKG:   entry.WeightKG,
		Notes:      entry.Notes,
	}
}

// LogSet handles POST /logs/session.
func (h *SessionLogHandler) LogSet(c *gin.Context) {
	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.")
		return
	}

	entry, err := h.logService.LogSet(c.Request.Context(), service.LogSetInput{
		UserID:     req.UserID,
		ExerciseID: req.ExerciseID,
		Date:       date,
		Sets:       req.Sets,
		Reps:       req.Reps,
		WeightKG:   req.WeightKG,
		Notes:      req.Notes,
	})
	if err != nil {
		respondWithServiceError(c, err, "log workout set")
		return
	}
	c.JSON(http.StatusCreated, MapSessionLogToResponse(entry))
}

// GetLogsForDate handles GET /logs/session/:user_id/:date.
func (h *SessionLogHandler) GetLogsForDate(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	date, err := time.Parse(domain.DateLayout, c.Param("date"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.")
		return
	}

	logs, err := h.logService.LogsForDate(c.Request.Context(), userID, date)
	if err != nil {
		respondWithServiceError(c, err, "get session logs")
		return
	}

	responses := make([]SessionLogResponse, len(logs))
	for i := range logs {
		responses[i] = MapSessionLogToResponse(&logs[i])
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteLog handles DELETE /logs/session/:id?user_id=. Only the owner can
// delete a log; anything else is a 404.
func (h *SessionLogHandler) DeleteLog(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "user_id query parameter is required.")
		return
	}

	if err := h.logService.DeleteLog(c.Request.Context(), logID, userID); err != nil {
		respondWithServiceError(c, err, "delete session log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log entry deleted successfully"})
}
