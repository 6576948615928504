package api_test

import (
	"alcyxob/fitness-planner/internal/api"
	"alcyxob/fitness-planner/internal/generator"
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/repository/sqlite"
	"alcyxob/fitness-planner/internal/seed"
	"alcyxob/fitness-planner/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	repos := sqlite.NewRepositories(db)
	_, err = seed.NewSeeder(repos.Library, repos.Templates).Run(ctx)
	require.NoError(t, err)

	metricsManager, registry := metrics.NewTestManagerAndRegistry()
	gen := generator.New(repos.Library, nil)

	router := api.NewRouter(api.RouterParams{
		BasePath:    "/api",
		CORSOrigins: []string{"http://localhost:5173"},
		Services: api.Services{
			Users:    service.NewUserService(repos.Users),
			Plans:    service.NewPlanService(repos.Users, repos.Plans, repos.Schedules, gen, metricsManager),
			Schedule: service.NewScheduleService(repos.Users, repos.Library, repos.Templates, repos.Schedules),
			Library:  service.NewLibraryService(repos.Library, repos.Templates),
			Logs:     service.NewSessionLogService(repos.Users, repos.Library, repos.Logs, metricsManager),
			Exports:  service.NewExportService(repos.Users, repos.Logs, nil, 0, metricsManager),
		},
		MetricsManager: metricsManager,
		Gatherer:       registry,
	})
	return &testServer{router: router}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func (s *testServer) createUser(t *testing.T, goal int) api.UserResponse {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/users", api.CreateUserRequest{
		Username: gofakeit.Username() + gofakeit.DigitN(6),
		Age:      gofakeit.Number(18, 70),
		HeightCM: gofakeit.Number(150, 200),
		WeightKG: gofakeit.Float64Range(50, 120),
		Gender:   gofakeit.Gender(),
		BodyType: 2,
		Goal:     goal,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[api.UserResponse](t, rr)
}

func (s *testServer) createPlan(t *testing.T, userID int64, sessions int) api.PlanResponse {
	t.Helper()
	path := fmt.Sprintf("/api/users/%d/plan", userID)
	rr := s.do(t, http.MethodPost, path, api.PlanRequest{SessionsPerWeek: sessions, HoursPerSession: 1})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decode[api.PlanResponse](t, rr)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rr.Body.String())
}

// goal 5 with four sessions: upper/lower at 4 x "8-12".
func TestScenarioUpperLowerHypertrophy(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)
	plan := s.createPlan(t, user.ID, 4)

	assert.Equal(t, "gym", plan.PlanDetails.WorkoutType)
	assert.Equal(t, 4, plan.PlanDetails.SessionsPerWeek)
	require.Len(t, plan.WeeklySchedule, 7)

	expected := map[string]int{
		"Monday": 6, "Tuesday": 5, "Wednesday": 0, "Thursday": 6,
		"Friday": 5, "Saturday": 0, "Sunday": 0,
	}
	for day, count := range expected {
		scheduled, ok := plan.WeeklySchedule[day]
		require.True(t, ok, day)
		assert.Equal(t, day, scheduled.DayOfWeek)
		assert.Len(t, scheduled.Exercises, count, day)
		for _, item := range scheduled.Exercises {
			assert.Equal(t, 4, item.Sets)
			assert.Equal(t, "8-12", item.Reps)
			assert.Equal(t, item.ExerciseID, item.Exercise.ID)
			assert.NotEmpty(t, item.Exercise.Name)
		}
	}
}

// goal 8 with three sessions: full body from chest, back, legs and shoulders at 5 x "4-6".
func TestScenarioFullBodyStrength(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 8)
	plan := s.createPlan(t, user.ID, 3)

	rr := s.do(t, http.MethodGet, "/api/muscle-groups", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	allowedGroups := map[int64]bool{}
	for _, group := range decode[[]api.MuscleGroupResponse](t, rr) {
		switch group.Name {
		case "Chest", "Back", "Legs", "Shoulders":
			allowedGroups[group.ID] = true
		}
	}
	require.Len(t, allowedGroups, 4)

	training := 0
	for day, scheduled := range plan.WeeklySchedule {
		switch day {
		case "Monday", "Wednesday", "Friday":
			training++
			assert.NotEmpty(t, scheduled.Exercises, day)
			assert.LessOrEqual(t, len(scheduled.Exercises), 5, day)
		default:
			assert.Empty(t, scheduled.Exercises, day)
		}
		for _, item := range scheduled.Exercises {
			assert.Equal(t, 5, item.Sets)
			assert.Equal(t, "4-6", item.Reps)
			assert.True(t, allowedGroups[item.Exercise.MuscleGroupID], item.Exercise.Name)
		}
	}
	assert.Equal(t, 3, training)
}

// A template swap applies the goal's scheme, whatever the day held before.
func TestScenarioTemplateSwapUsesGoalScheme(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 2)
	plan := s.createPlan(t, user.ID, 3)

	monday := plan.WeeklySchedule["Monday"]
	require.NotEmpty(t, monday.Exercises)

	rr := s.do(t, http.MethodPut, fmt.Sprintf("/api/workout-day-exercise/%d", monday.Exercises[0].ID),
		api.UpdateDayExerciseRequest{Sets: 5, Reps: "4-6"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/templates", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	templates := decode[[]api.TemplateResponse](t, rr)
	require.Len(t, templates, 5)

	rr = s.do(t, http.MethodGet, fmt.Sprintf("/api/templates/%d", templates[0].ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	template := decode[api.TemplateResponse](t, rr)
	require.NotEmpty(t, template.Exercises)

	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/workout-day/%d/swap-template", monday.ID),
		api.SwapTemplateRequest{TemplateID: template.ID, UserID: user.ID})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	swapped := decode[[]api.DayExerciseResponse](t, rr)
	require.Len(t, swapped, len(template.Exercises))
	for i, item := range swapped {
		assert.Equal(t, 3, item.Sets)
		assert.Equal(t, "12-15", item.Reps)
		assert.Equal(t, template.Exercises[i].ID, item.ExerciseID)
	}
}

func TestManualPlanEditing(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)
	plan := s.createPlan(t, user.ID, 2)
	sunday := plan.WeeklySchedule["Sunday"]
	require.Empty(t, sunday.Exercises)

	rr := s.do(t, http.MethodGet, "/api/exercises", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	exercises := decode[[]api.ExerciseResponse](t, rr)
	require.Len(t, exercises, 32)

	rr = s.do(t, http.MethodPost, fmt.Sprintf("/api/workout-day/%d/exercises", sunday.ID),
		api.AddDayExerciseRequest{ExerciseID: exercises[0].ID, Sets: 2, Reps: "20"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	added := decode[api.DayExerciseResponse](t, rr)
	assert.Equal(t, exercises[0].Name, added.Exercise.Name)

	rr = s.do(t, http.MethodPut, fmt.Sprintf("/api/workout-day-exercise/%d/change-exercise", added.ID),
		api.ChangeExerciseRequest{NewExerciseID: exercises[1].ID})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	changed := decode[api.DayExerciseResponse](t, rr)
	assert.Equal(t, exercises[1].ID, changed.ExerciseID)
	assert.Equal(t, 2, changed.Sets)
	assert.Equal(t, "20", changed.Reps)

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/workout-day-exercise/%d", added.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Exercise removed successfully"}`, rr.Body.String())

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/workout-day-exercise/%d", added.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRegenerateAndUpdatePlan(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)
	s.createPlan(t, user.ID, 4)

	path := fmt.Sprintf("/api/users/%d/plan", user.ID)
	rr := s.do(t, http.MethodPut, path, api.PlanRequest{WorkoutType: "home", SessionsPerWeek: 6, HoursPerSession: 1.5})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := decode[api.WorkoutPlanResponse](t, rr)
	assert.Equal(t, "home", updated.WorkoutType)
	assert.Equal(t, 6, updated.SessionsPerWeek)

	rr = s.do(t, http.MethodPost, path+"/regenerate", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	regenerated := decode[struct {
		WeeklySchedule map[string]api.WorkoutDayResponse `json:"weekly_schedule"`
	}](t, rr)
	require.Len(t, regenerated.WeeklySchedule, 7)
	assert.Empty(t, regenerated.WeeklySchedule["Sunday"].Exercises)
	assert.Len(t, regenerated.WeeklySchedule["Saturday"].Exercises, 5)
}

func TestListExercisesByMuscleGroup(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/api/muscle-groups", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	ids := map[string]int64{}
	for _, group := range decode[[]api.MuscleGroupResponse](t, rr) {
		ids[group.Name] = group.ID
	}

	for _, query := range []string{
		fmt.Sprintf("muscle_group_ids=%d,%d", ids["Biceps"], ids["Triceps"]),
		fmt.Sprintf("muscle_group_ids=%d&muscle_group_ids=%d", ids["Biceps"], ids["Triceps"]),
	} {
		rr = s.do(t, http.MethodGet, "/api/exercises?"+query, nil)
		require.Equal(t, http.StatusOK, rr.Code, query)
		exercises := decode[[]api.ExerciseResponse](t, rr)
		assert.Len(t, exercises, 6, query)
	}

	rr = s.do(t, http.MethodGet, "/api/exercises?muscle_group_ids=chest", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionLogs(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)
	other := s.createUser(t, 5)

	rr := s.do(t, http.MethodGet, "/api/exercises", nil)
	exercise := decode[[]api.ExerciseResponse](t, rr)[0]

	rr = s.do(t, http.MethodPost, "/api/logs/session", api.LogSetRequest{
		UserID: user.ID, ExerciseID: exercise.ID, Date: "2026-10-18", Sets: 1, Reps: 10, WeightKG: 60,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	logged := decode[api.SessionLogResponse](t, rr)
	assert.Equal(t, "2026-10-18", logged.Date)

	logsPath := fmt.Sprintf("/api/logs/session/%d/2026-10-18", user.ID)
	rr = s.do(t, http.MethodGet, logsPath, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]api.SessionLogResponse](t, rr), 1)

	rr = s.do(t, http.MethodGet, fmt.Sprintf("/api/logs/session/%d/2026-10-19", user.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/logs/session/%d?user_id=%d", logged.ID, other.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"log entry not found or user mismatch"}`, rr.Body.String())

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/logs/session/%d?user_id=%d", logged.ID, user.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Log entry deleted successfully"}`, rr.Body.String())

	rr = s.do(t, http.MethodGet, logsPath, nil)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 4)
	s.createPlan(t, user.ID, 3)

	rr := s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, user.Username, decode[api.UserResponse](t, rr).Username)

	rr = s.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	rr = s.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/plan", user.ID), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"duplicate username", http.MethodPost, "/api/users", api.CreateUserRequest{Username: user.Username}, http.StatusConflict},
		{"missing username", http.MethodPost, "/api/users", map[string]any{"age": 30}, http.StatusBadRequest},
		{"malformed json", http.MethodPost, "/api/users", "not an object", http.StatusBadRequest},
		{"unknown user", http.MethodGet, "/api/users/999999", nil, http.StatusNotFound},
		{"malformed id", http.MethodGet, "/api/users/abc", nil, http.StatusBadRequest},
		{"plan for unknown user", http.MethodPost, "/api/users/999999/plan", api.PlanRequest{SessionsPerWeek: 3}, http.StatusNotFound},
		{"no plan yet", http.MethodGet, fmt.Sprintf("/api/users/%d/plan", user.ID), nil, http.StatusNotFound},
		{"update without plan", http.MethodPut, fmt.Sprintf("/api/users/%d/plan", user.ID), api.PlanRequest{}, http.StatusNotFound},
		{"unknown template", http.MethodGet, "/api/templates/999999", nil, http.StatusNotFound},
		{"unknown workout day", http.MethodPost, "/api/workout-day/999999/exercises", api.AddDayExerciseRequest{ExerciseID: 1, Sets: 3, Reps: "10"}, http.StatusNotFound},
		{"swap on unknown day", http.MethodPut, "/api/workout-day/999999/swap-template", api.SwapTemplateRequest{TemplateID: 1, UserID: user.ID}, http.StatusNotFound},
		{"bad log date", http.MethodGet, fmt.Sprintf("/api/logs/session/%d/18-10-2026", user.ID), nil, http.StatusBadRequest},
		{"log without user_id", http.MethodDelete, "/api/logs/session/1", nil, http.StatusBadRequest},
		{"log for unknown exercise", http.MethodPost, "/api/logs/session", api.LogSetRequest{UserID: user.ID, ExerciseID: 999999, Date: "2026-10-18"}, http.StatusNotFound},
		{"export without storage", http.MethodPost, fmt.Sprintf("/api/users/%d/exports", user.ID), nil, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			body := decode[map[string]string](t, rr)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	user := s.createUser(t, 5)
	s.createPlan(t, user.ID, 4)

	rr := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `fitness_test_server_plan_generations_total{split="upper-lower"} 1`)
	assert.Contains(t, rr.Body.String(), `fitness_test_server_request_duration_seconds_count{method="POST",route="/api/users",status_code="201"} 1`)
	assert.Contains(t, rr.Body.String(), `fitness_test_server_requests_total{method="POST",status="201"} 2`)
}
