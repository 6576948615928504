package api

import (
	"alcyxob/fitness-planner/internal/domain"
	"alcyxob/fitness-planner/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user profile endpoints.
type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest defines the expected JSON for creating a user. Numeric
// fields are not range checked; goal outside 1-9 falls into the nearest band.
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required"`
	Age      int     `json:"age"`
	HeightCM int     `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	Gender   string  `json:"gender"`
	BodyType int     `json:"body_type"`
	Goal     int     `json:"goal"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Age       int       `json:"age"`
	HeightCM  int       `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	Gender    string    `json:"gender"`
	BodyType  int       `json:"body_type"`
	Goal      int       `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Age:       user.Age,
		HeightCM:  user.HeightCM,
		WeightKG:  user.WeightKG,
		Gender:    user.Gender,
		BodyType:  user.BodyType,
		Goal:      user.Goal,
		CreatedAt: user.CreatedAt,
	}
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &domain.User{
		Username: req.Username,
		Age:      req.Age,
		HeightCM: req.HeightCM,
		WeightKG: req.WeightKG,
		Gender:   req.Gender,
		BodyType: req.BodyType,
		Goal:     req.Goal,
	})
	if err != nil {
		respondWithServiceError(c, err, "create user")
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// GetUser handles GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteUser handles DELETE /users/:id. The plan, schedule and logs go with it.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondWithServiceError(c, err, "delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
