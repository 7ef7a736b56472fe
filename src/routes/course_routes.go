package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"
	"Backend-CorpsConnect/src/utils"

	"github.com/gofiber/fiber/v2"
)

func courseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses")

	canManage := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanManageCourses })
	canEnroll := middleware.RequirePermission(func(p utils.RolePermissions) bool { return p.CanEnrollCourses })

	courses.Get("/", controllers.ListCourses)
	courses.Get("/mine", middleware.AuthJWT, canManage, controllers.ListMyCourses)
	courses.Get("/enrollment", middleware.AuthJWT, canEnroll, controllers.GetCurrentEnrollment)
	courses.Post("/attendance/scan", middleware.AuthJWT, canEnroll, controllers.ScanAttendance)

	courses.Post("/", middleware.AuthJWT, canManage, controllers.CreateCourse)
	courses.Put("/:id", middleware.AuthJWT, canManage, controllers.UpdateCourse)
	courses.Post("/:id/publish", middleware.AuthJWT, canManage, controllers.PublishCourse)
	courses.Delete("/:id", middleware.AuthJWT, canManage, controllers.ArchiveCourse)
	courses.Post("/:id/sessions", middleware.AuthJWT, canManage, controllers.GenerateQrSession)
	courses.Get("/:id/attendance", middleware.AuthJWT, canManage, controllers.GetCourseAttendance)

	courses.Post("/:id/enroll", middleware.AuthJWT, canEnroll, controllers.EnrollCourse)
	courses.Post("/:id/drop", middleware.AuthJWT, canEnroll, controllers.DropCourse)
	courses.Get("/:id/attendance/me", middleware.AuthJWT, canEnroll, controllers.GetMyAttendance)
	courses.Get("/:id/clearance", middleware.AuthJWT, canEnroll, controllers.CheckClearance)
	courses.Post("/:id/clearance/certificate", middleware.AuthJWT, canEnroll, controllers.GetClearanceCertificate)

	courses.Get("/:id", controllers.GetCourse)
}
