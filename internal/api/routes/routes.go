package routes

import (
	"log"

	"turnos-backend/internal/api/handlers"
	"turnos-backend/internal/api/middleware"
	"turnos-backend/internal/config"
	"turnos-backend/internal/dates"
	"turnos-backend/internal/repository"
	"turnos-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The db
// handle is nil when the snapshot backend is selected.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize calendar
	calendar, err := dates.New(dates.Config{
		Timezone:     cfg.Timezone,
		Locale:       cfg.Locale,
		WeekStartsOn: cfg.WeekStartsOn,
	})
	if err != nil {
		return nil, err
	}

	// Initialize storage port
	turnoRepo, err := repository.NewTurnoRepository(cfg, db)
	if err != nil {
		return nil, err
	}

	// Initialize services
	turnoService := service.NewTurnoService(turnoRepo, calendar, validator)
	importService := service.NewImportService(turnoRepo, calendar)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	turnoHandler := handlers.NewTurnoHandler(turnoService, importService, cfg.MaxUploadBytes(), cfg.CleanupDefaultDays)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	if cfg.AuthEnabled {
		log.Println("Bearer-token authentication enabled for /api/v1")
		v1.Use(middleware.RequireAuth(cfg))
	}

	{
		turnos := v1.Group("/turnos")
		{
			turnos.GET("", turnoHandler.ListTurnos)
			turnos.POST("", turnoHandler.UpsertTurno)
			turnos.GET("/today", turnoHandler.GetToday)
			turnos.GET("/stats", turnoHandler.GetStats)
			turnos.POST("/excel", turnoHandler.ImportExcel)
			turnos.DELETE("/cleanup", turnoHandler.Cleanup)
			turnos.GET("/:date", turnoHandler.GetTurno)
			turnos.DELETE("/:date", turnoHandler.DeleteTurno)
		}
	}

	return router, nil
}
