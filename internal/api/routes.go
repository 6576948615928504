package api

import (
	"alcyxob/fitness-planner/internal/metrics"
	"alcyxob/fitness-planner/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the handlers depend on.
type Services struct {
	Users    service.UserService
	Plans    service.PlanService
	Schedule service.ScheduleService
	Library  service.LibraryService
	Logs     service.SessionLogService
	Exports  service.ExportService
}

type RouterParams struct {
	BasePath       string
	CORSOrigins    []string
	Services       Services
	MetricsManager *metrics.Manager
	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(params RouterParams) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestID(),
		LogRequest(),
		PanicRecovery(params.MetricsManager),
		Cors(params.CORSOrigins),
	)
	if params.MetricsManager != nil {
		router.Use(RequestMetrics(params.MetricsManager))
	}

	SetupRoutes(router, params.BasePath, params.Services, params.Gatherer)
	return router
}

func SetupRoutes(router *gin.Engine, basePath string, services Services, gatherer prometheus.Gatherer) {
	userHandler := NewUserHandler(services.Users)
	planHandler := NewPlanHandler(services.Plans)
	scheduleHandler := NewScheduleHandler(services.Schedule)
	libraryHandler := NewLibraryHandler(services.Library)
	logHandler := NewSessionLogHandler(services.Logs)
	exportHandler := NewExportHandler(services.Exports)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiGroup := router.Group(basePath)

	// --- Users & Plans ---
	userGroup := apiGroup.Group("/users")
	{
		userGroup.POST("", userHandler.CreateUser)
		userGroup.GET("/:id", userHandler.GetUser)
		userGroup.DELETE("/:id", userHandler.DeleteUser)

		userGroup.POST("/:id/plan", planHandler.CreatePlan)
		userGroup.PUT("/:id/plan", planHandler.UpdatePlan)
		userGroup.GET("/:id/plan", planHandler.GetPlan)
		userGroup.POST("/:id/plan/regenerate", planHandler.RegeneratePlan)

		userGroup.POST("/:id/exports", exportHandler.ExportSessionLogs)
	}

	// --- Library ---
	apiGroup.GET("/exercises", libraryHandler.ListExercises)
	apiGroup.GET("/muscle-groups", libraryHandler.ListMuscleGroups)
	apiGroup.GET("/templates", libraryHandler.ListTemplates)
	apiGroup.GET("/templates/:id", libraryHandler.GetTemplate)

	// --- Manual schedule editing ---
	apiGroup.PUT("/workout-day/:id/swap-template", scheduleHandler.SwapTemplate)
	apiGroup.POST("/workout-day/:id/exercises", scheduleHandler.AddExercise)
	dayExerciseGroup := apiGroup.Group("/workout-day-exercise")
	{
		dayExerciseGroup.PUT("/:id", scheduleHandler.UpdateExercise)
		dayExerciseGroup.PUT("/:id/change-exercise", scheduleHandler.ChangeExercise)
		dayExerciseGroup.DELETE("/:id", scheduleHandler.RemoveExercise)
	}

	// --- Session logs ---
	logGroup := apiGroup.Group("/logs/session")
	{
		logGroup.POST("", logHandler.LogSet)
		logGroup.GET("/:user_id/:date", logHandler.GetLogsForDate)
		logGroup.DELETE("/:id", logHandler.DeleteLog)
	}
}
