package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func documentRoutes(app *fiber.App) {
	docs := app.Group("/api/documents")

	docs.Get("/public/:documentId", controllers.GetPublicDocument)

	docs.Post("/", middleware.AuthJWT, controllers.CreateDocument)
	docs.Get("/", middleware.AuthJWT, controllers.ListDocuments)
	docs.Get("/trash", middleware.AuthJWT, controllers.ListArchivedDocuments)
	docs.Get("/:documentId", middleware.AuthJWT, controllers.GetDocument)
	docs.Put("/:documentId", middleware.AuthJWT, controllers.UpdateDocument)
	docs.Delete("/:documentId", middleware.AuthJWT, controllers.ArchiveDocument)
	docs.Post("/:documentId/restore", middleware.AuthJWT, controllers.RestoreDocument)
	docs.Delete("/:documentId/purge", middleware.AuthJWT, controllers.PurgeDocument)
}
