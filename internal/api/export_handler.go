package api

import (
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

type ExportResponse struct {
	ObjectKey   string    `json:"object_key"`
	LogCount    int       `json:"log_count"`
	DownloadURL string    `json:"download_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ExportSessionLogs handles POST /users/:id/exports. Answers 503 when no
// bucket is configured.
func (h *ExportHandler) ExportSessionLogs(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.exportService.ExportSessionLogs(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "export session logs")
		return
	}

	c.JSON(http.StatusCreated, ExportResponse{
		ObjectKey:   result.ObjectKey,
		LogCount:    result.LogCount,
		DownloadURL: result.DownloadURL,
		ExpiresAt:   result.ExpiresAt,
	})
}
