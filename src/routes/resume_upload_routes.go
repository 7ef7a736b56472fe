package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func resumeUploadRoutes(app *fiber.App) {
	uploads := app.Group("/api/resume-uploads", middleware.AuthJWT)

	uploads.Post("/", controllers.UploadResume)
	uploads.Get("/", controllers.ListResumeUploads)
	uploads.Get("/:id", controllers.GetResumeUpload)
	uploads.Get("/:id/download", controllers.DownloadResume)
	uploads.Delete("/:id", controllers.DeleteResumeUpload)
}
