package api

import (
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrPlanNotFound,
	service.ErrWorkoutDayNotFound,
	service.ErrDayExerciseNotFound,
	service.ErrExerciseNotFound,
	service.ErrTemplateNotFound,
	service.ErrSessionLogNotFound,
	repository.ErrNotFound,
}

// respondWithServiceError maps service errors to status codes. Unknown errors
// are logged and answered with a generic 500.
func respondWithServiceError(c *gin.Context, err error, action string) {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			abortWithError(c, http.StatusNotFound, target.Error())
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		abortWithError(c, http.StatusConflict, service.ErrUsernameTaken.Error())
	case errors.Is(err, service.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrExportDisabled):
		abortWithError(c, http.StatusServiceUnavailable, service.ErrExportDisabled.Error())
	default:
		log.WithField("request_id", c.GetString(ContextRequestIDKey)).Errorf("failed to %s: %v", action, err)
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Failed to %s.", action))
	}
}

// parseIDParam reads a positive integer path parameter. It answers 400 and
// returns false when the value is malformed.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s format.", name))
		return 0, false
	}
	return id, true
}
