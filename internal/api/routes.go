package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles the service layer the HTTP API is built on.
type Services struct {
	Auth     service.AuthService
	Exercise service.ExerciseService
	Program  service.ProgramService
	Photo    service.PhotoService
	Export   service.ExportService
}

// RouterOptions carries the non-service settings of the HTTP API.
type RouterOptions struct {
	JWTSecret      string
	MaxUploadBytes int64
	Metrics        *metrics.Manager
	Gatherer       prometheus.Gatherer // served on /metrics when set
}

func SetupRoutes(router *gin.Engine, services Services, opts RouterOptions) {
	authHandler := NewAuthHandler(services.Auth)
	exerciseHandler := NewExerciseHandler(services.Exercise)
	templateHandler := NewTemplateHandler(services.Program)
	programHandler := NewProgramHandler(services.Program)
	photoHandler := NewPhotoHandler(services.Photo, opts.MaxUploadBytes)
	exportHandler := NewExportHandler(services.Export)

	router.Use(PanicRecovery(opts.Metrics), RequestLogger())
	if opts.Metrics != nil {
		router.Use(RequestMetrics(opts.Metrics))
	}

	authMiddleware := AuthMiddleware(opts.JWTSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// --- Exercise Routes ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.GetExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}

		// --- Template Routes ---
		templateGroup := protected.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			// Only admins publish built-in templates
			templateGroup.POST("", RoleMiddleware(domain.RoleAdmin), templateHandler.PublishTemplate)
			templateGroup.POST("/:templateId/clone", templateHandler.CloneTemplate)
		}

		// --- Program Routes ---
		programGroup := protected.Group("/programs")
		{
			programGroup.POST("", programHandler.CreateProgram)
			programGroup.GET("", programHandler.ListPrograms)
			programGroup.GET("/:programId", programHandler.GetProgram)
			programGroup.DELETE("/:programId", programHandler.DeleteProgram)

			// Cycles
			programGroup.POST("/:programId/cycles", programHandler.CreateCycle)
			programGroup.GET("/:programId/cycles/activatable", programHandler.ActivatableCycles)
			programGroup.POST("/:programId/cycles/:cycleId/activate", programHandler.ActivateCycle)
			programGroup.POST("/:programId/cycles/:cycleId/deactivate", programHandler.DeactivateCycle)
			programGroup.POST("/:programId/complete-cycle", programHandler.CompleteCurrentCycle)
			programGroup.POST("/:programId/refresh-activation", programHandler.RefreshCycleActivation)

			// Schedule and sessions
			programGroup.GET("/:programId/schedule", programHandler.Schedule)
			programGroup.GET("/:programId/expected", programHandler.IsWorkoutExpected)
			programGroup.GET("/:programId/next-session", programHandler.NextSession)
			programGroup.PUT("/:programId/cycles/:cycleId/sessions/:sessionId", programHandler.LogSession)
		}

		// --- Photo Routes ---
		photoGroup := protected.Group("/photos")
		{
			photoGroup.POST("", photoHandler.UploadPhoto)
			photoGroup.GET("", photoHandler.ListPhotos)
			photoGroup.GET("/:photoId/url", photoHandler.GetPhotoURL)
			photoGroup.DELETE("/:photoId", photoHandler.DeletePhoto)
		}

		protected.POST("/exports", exportHandler.CreateExport)
	}
}
