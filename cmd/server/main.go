package main

import (
	"log"
	"time"

	"case_desk_app_go/config"
	"case_desk_app_go/db"
	"case_desk_app_go/handlers"
	"case_desk_app_go/middleware"
	"case_desk_app_go/models"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	database, err := db.Initialize(cfg.DBPath, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close(database)

	// Run migrations; the statutes table exists only in the extended variant
	migrations := []interface{}{&models.Case{}, &models.CaseJacket{}}
	if cfg.EnableStatutes {
		migrations = append(migrations, &models.Statute{})
	}
	if err := db.AutoMigrate(database, migrations...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services
	caseService := services.NewCaseService(database)
	sessions := services.NewDirectorySessions(cfg.DirectoryTimeout)
	gate := middleware.NewGate(cfg.UnitRoles, cfg.AdminRoles)

	// Handlers
	caseHandler := handlers.NewCaseHandler(cfg, caseService, sessions)
	directoryHandler := handlers.NewDirectoryHandler(sessions)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.ResolveCaller())

	// Unit-member routes (case management)
	unit := e.Group("/api", middleware.RequireCapability(gate, middleware.CapabilityUnit))
	{
		unit.POST("/cases", caseHandler.FileCase)
		unit.PATCH("/cases/:number", caseHandler.EditCase)
		unit.GET("/cases", caseHandler.Directory)
		unit.GET("/cases/:number", caseHandler.Lookup)
		unit.POST("/cases/:number/jackets", caseHandler.AttachJacket)
		unit.POST("/cases/:number/evidence", caseHandler.AddEvidence)
		unit.POST("/cases/import", caseHandler.ImportCase)

		unit.POST("/directory/:token/previous", directoryHandler.Previous)
		unit.POST("/directory/:token/next", directoryHandler.Next)

		unit.GET("/help", handlers.HelpHandler(cfg))
	}

	// Admin-only routes (destructive deletion)
	admin := e.Group("/api", middleware.RequireCapability(gate, middleware.CapabilityAdmin))
	{
		admin.DELETE("/cases/:number", caseHandler.DeleteCase)
	}

	// Extended variant: statute directory
	if cfg.EnableStatutes {
		statuteService := services.NewStatuteService(database)
		statuteHandler := handlers.NewStatuteHandler(cfg, statuteService, sessions)

		unit.POST("/statutes", statuteHandler.AddStatute)
		unit.GET("/statutes/search", statuteHandler.SearchStatutes)
	}

	// Sweep abandoned directory sessions
	go func() {
		ticker := time.NewTicker(cfg.DirectoryTimeout)
		defer ticker.Stop()

		for range ticker.C {
			if removed := sessions.Sweep(); removed > 0 {
				log.Printf("Swept %d expired directory sessions", removed)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
