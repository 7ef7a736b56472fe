package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

func applicantRoutes(app *fiber.App) {
	apps := app.Group("/api/applications", middleware.AuthJWT)

	canApply := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanApplyToJobs })
	canManage := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanManageApplications })

	apps.Post("/", canApply, controllers.ApplyToJob)
	apps.Get("/", canApply, controllers.ListMyApplications)
	apps.Get("/employer", canManage, controllers.ListEmployerApplications)
	apps.Get("/job/:jobId", canManage, controllers.ListJobApplications)
	apps.Get("/:id", controllers.GetApplication)
	apps.Put("/:id/status", canManage, controllers.UpdateApplicationStatus)
	apps.Post("/:id/withdraw", canApply, controllers.WithdrawApplication)
}
