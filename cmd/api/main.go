package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/huntboard/huntboard/internal/config"
	"github.com/huntboard/huntboard/internal/database"
	"github.com/huntboard/huntboard/internal/handlers"
	"github.com/huntboard/huntboard/internal/logger"
	"github.com/huntboard/huntboard/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}
	cfg := config.Load()
	logg := logger.New()

	// 2. Database Connection
	db, err := database.Connect(cfg.DB, logg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 3. Initialize Core Services (Dependencies)
	siteService := services.NewSiteService(db, logg)
	applicationService := services.NewApplicationService(db, logg)
	timelineService := services.NewTimelineService(db, logg)

	// 4. Initialize Handlers
	siteHandler := handlers.NewSiteHandler(siteService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		sites := api.Group("/job-sites")
		{
			sites.POST("", siteHandler.Create)
			sites.GET("", siteHandler.List)
			sites.GET("/dashboard_stats", siteHandler.DashboardStats)
			sites.GET("/:id", siteHandler.Get)
			sites.PATCH("/:id", siteHandler.Update)
			sites.DELETE("/:id", siteHandler.Delete)
			sites.POST("/:id/mark_visited", siteHandler.MarkVisited)
			sites.POST("/:id/mark_completed", siteHandler.MarkCompleted)
		}

		applications := api.Group("/applications")
		{
			applications.POST("", applicationHandler.Create)
			applications.GET("", applicationHandler.List)
			applications.GET("/timeline", applicationHandler.ListActive)
			applications.GET("/stats", applicationHandler.Stats)
			applications.GET("/:id", applicationHandler.Get)
			applications.PATCH("/:id", applicationHandler.Update)
			applications.DELETE("/:id", applicationHandler.Delete)
			applications.POST("/:id/archive", applicationHandler.Archive)
			applications.POST("/:id/unarchive", applicationHandler.Unarchive)
		}

		timeline := api.Group("/timeline")
		{
			timeline.POST("", timelineHandler.Create)
			timeline.GET("", timelineHandler.List)
			timeline.GET("/:id", timelineHandler.Get)
			timeline.DELETE("/:id", timelineHandler.Delete)
		}
	}

	logg.Info("server starting", slog.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
