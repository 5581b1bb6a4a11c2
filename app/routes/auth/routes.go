package auth

import "github.com/gofiber/fiber/v2"

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	api.Post("/register", RegisterAPI)
	api.Post("/login", LoginAPI)
}
