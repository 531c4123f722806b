package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/taha1545/school-mangment-system/app/config"
	"github.com/taha1545/school-mangment-system/app/database"
	"github.com/taha1545/school-mangment-system/app/routes/auth"
	"github.com/taha1545/school-mangment-system/app/routes/followup"
	"github.com/taha1545/school-mangment-system/app/routes/timetable"
	"github.com/taha1545/school-mangment-system/app/services"
)

// errorHandler keeps every error response in the API's JSON shape
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize configuration and database
	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Import the exports directory on startup and keep watching it
	cfg := config.AppConfig
	if cfg.ExportsDir != "" {
		if summary, err := timetable.ImportFromExportsDir(); err != nil {
			log.Printf("Initial import failed: %v", err)
		} else {
			log.Printf("Initial import: %d activities from %d files", summary.ActivityCount, summary.FilesRead)
		}
		services.StartExportWatcher(cfg.ExportsDir, cfg.WatchInterval, timetable.ImportPaths)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup schedule routes
	timetable.SetupTimetableRoutes(app)

	// Setup follow-up routes
	followup.SetupFollowUpRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
