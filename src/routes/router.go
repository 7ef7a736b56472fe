package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	userRoutes(app)
	jobRoutes(app)
	applicantRoutes(app)
	courseRoutes(app)
	documentRoutes(app)
	resumeUploadRoutes(app)
	adminRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running")
	})
}
