package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

func jobRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")

	jobs.Get("/", controllers.ListJobs)

	canPost := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanPostJobs })
	jobs.Get("/mine", middleware.AuthJWT, canPost, controllers.ListMyJobs)
	jobs.Get("/analysis", middleware.AuthJWT, canPost, controllers.GetEmployerAnalysis)
	jobs.Post("/", middleware.AuthJWT, canPost, controllers.CreateJob)
	jobs.Put("/:id", middleware.AuthJWT, canPost, controllers.UpdateJob)
	jobs.Post("/:id/publish", middleware.AuthJWT, canPost, controllers.PublishJob)
	jobs.Post("/:id/close", middleware.AuthJWT, canPost, controllers.CloseJob)
	jobs.Delete("/:id", middleware.AuthJWT, canPost, controllers.DeleteJob)

	// Registered last so the static routes above win.
	jobs.Get("/:id", controllers.GetJob)
}
