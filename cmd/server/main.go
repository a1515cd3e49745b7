// @title Meeting Hours API
// @version 1.0
// @description Measures time spent in meetings across a roster and keeps report history
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"meetinghours/config"
	"meetinghours/internal/database"
	"meetinghours/internal/handlers"
	"meetinghours/internal/middleware"
	"meetinghours/internal/repository"
	"meetinghours/internal/services"

	_ "meetinghours/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid REFERENCE_OFFSET:", err)
	}

	mongodb, err := database.NewMongoDB(cfg.MongoDBURI, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Disconnect()

	// Initialize repositories
	reportRepo := repository.NewReportRepository(mongodb.Database)
	statsRepo := repository.NewStatisticsRepository(mongodb.Database)

	// Initialize services
	source, err := services.NewEventSource(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to set up calendar source:", err)
	}
	cohort, err := services.NewCohort(cfg, source)
	if err != nil {
		log.Fatal("Failed to load rules:", err)
	}
	reportService := services.NewReportService(cohort, reportRepo, loc)

	if cfg.ReportSchedule != "" && cfg.RosterFile != "" {
		job := &services.ReportJob{
			Service:      reportService,
			RosterFile:   cfg.RosterFile,
			LookbackDays: cfg.ReportLookbackDays,
		}
		if _, err := services.StartReportWorker(ctx, cfg.ReportSchedule, job); err != nil {
			log.Fatal("Failed to start report worker:", err)
		}
		log.Printf("Scheduled reports on %q for %s", cfg.ReportSchedule, cfg.RosterFile)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg)
	reportHandler := handlers.NewReportHandler(reportService, reportRepo, 0)
	statsHandler := handlers.NewStatisticsHandler(statsRepo)

	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	public := r.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":   "ok",
				"message":  "Meeting Hours API is running",
				"database": "MongoDB connected",
				"source":   cohort.Source,
			})
		})

		public.POST("/auth/login", authHandler.Login)
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/auth/me", authHandler.GetMe)

		protected.POST("/reports", reportHandler.RunReport)
		protected.GET("/reports", reportHandler.ListReports)
		protected.GET("/reports/:id", reportHandler.GetReport)
		protected.GET("/reports/:id/people", reportHandler.SearchPeople)

		protected.GET("/statistics/roles", statsHandler.GetRoleStatistics)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Connected to MongoDB: %s", cfg.MongoDBDatabase)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
