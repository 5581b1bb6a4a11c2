package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"school-records/app/apperr"
	"school-records/app/config"
	"school-records/app/database"
	"school-records/app/routes/auth"
	"school-records/app/routes/export"
	"school-records/app/routes/grades"
	"school-records/app/routes/students"
)

func main() {
	config.Load()
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Routes
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app)
	grades.SetupGradesRoutes(app)
	export.SetupExportRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return apperr.ErrNotFound
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
