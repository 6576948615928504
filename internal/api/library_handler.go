package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves the read-only exercise library.
type LibraryHandler struct {
	libraryService service.LibraryService
}

func NewLibraryHandler(libraryService service.LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryService: libraryService}
}

type ExerciseResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	MuscleGroupID int64  `json:"muscle_group_id"`
}

type MuscleGroupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TemplateResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Exercises []ExerciseResponse `json:"exercises,omitempty"`
}

func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:            ex.ID,
		Name:          ex.Name,
		Type:          string(ex.Type),
		MuscleGroupID: ex.MuscleGroupID,
	}
}

func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func MapTemplateToResponse(template *domain.WorkoutTemplate) TemplateResponse {
	resp := TemplateResponse{ID: template.ID, Name: template.Name}
	if len(template.Exercises) > 0 {
		resp.Exercises = MapExercisesToResponse(template.Exercises)
	}
	return resp
}

// ListExercises handles GET /exercises. muscle_group_ids may be repeated or
// comma separated; without it every exercise is returned.
func (h *LibraryHandler) ListExercises(c *gin.Context) {
	groupIDs, err := parseIDList(c.QueryArray("muscle_group_ids"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid muscle_group_ids: "+err.Error())
		return
	}

	exercises, err := h.libraryService.ListExercises(c.Request.Context(), groupIDs)
	if err != nil {
		respondWithServiceError(c, err, "list exercises")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// ListMuscleGroups handles GET /muscle-groups.
func (h *LibraryHandler) ListMuscleGroups(c *gin.Context) {
	groups, err := h.libraryService.ListMuscleGroups(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "list muscle groups")
		return
	}

	responses := make([]MuscleGroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = MuscleGroupResponse{ID: group.ID, Name: group.Name}
	}
	c.JSON(http.StatusOK, responses)
}

// ListTemplates handles GET /templates.
func (h *LibraryHandler) ListTemplates(c *gin.Context) {
	templates, err := h.libraryService.ListTemplates(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "list templates")
		return
	}

	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = MapTemplateToResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetTemplate handles GET /templates/:id.
func (h *LibraryHandler) GetTemplate(c *gin.Context) {
	templateID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := h.libraryService.GetTemplate(c.Request.Context(), templateID)
	if err != nil {
		respondWithServiceError(c, err, "get template")
		return
	}
	c.JSON(http.StatusOK, MapTemplateToResponse(template))
}

func parseIDList(values []string) ([]int64, error) {
	var ids []int64
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
