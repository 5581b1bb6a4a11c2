package students

import (
	"github.com/gofiber/fiber/v2"

	"school-records/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)         // List students (?class_name= filter)
	api.Post("/", CreateStudentAPI)      // Create new student
	api.Get("/:id", GetStudentByIDAPI)   // Get single student by ID
	api.Put("/:id", UpdateStudentAPI)    // Update existing student
	api.Delete("/:id", DeleteStudentAPI) // Delete student
}
