package grades

import (
	"github.com/gofiber/fiber/v2"

	"school-records/app/routes/auth"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")
	api.Use(auth.AuthMiddleware)

	api.Post("/", CreateGradeAPI)                       // Create new grade
	api.Get("/student/:studentId", GetStudentGradesAPI) // Grades for one student
	api.Get("/class/:className", GetClassGradesAPI)     // Grades for a class (?subject= filter)
	api.Put("/:id", UpdateGradeAPI)                     // Update existing grade
	api.Delete("/:id", DeleteGradeAPI)                  // Delete grade
}
