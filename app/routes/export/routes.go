package export

import (
	"github.com/gofiber/fiber/v2"

	"school-records/app/routes/auth"
)

func SetupExportRoutes(app *fiber.App) {
	api := app.Group("/api/export")
	api.Use(auth.AuthMiddleware)

	api.Get("/reportcard/:studentId", ExportReportCardAPI)
}
