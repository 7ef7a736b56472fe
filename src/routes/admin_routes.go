package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

func adminRoutes(app *fiber.App) {
	isAdmin := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanAccessAdminPanel })
	admin := app.Group("/api/admin", middleware.AuthJWT, isAdmin)

	admin.Get("/users", controllers.AdminListUsers)
	admin.Put("/users/:id/status", controllers.AdminUpdateUserStatus)
	admin.Get("/applications", controllers.AdminListApplications)
	admin.Get("/dashboard", controllers.AdminDashboard)
	admin.Get("/activity", controllers.AdminRecentActivity)
	admin.Get("/trends", controllers.AdminTrends)
}
