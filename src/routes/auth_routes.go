package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", controllers.RegisterUser)
	auth.Post("/login", controllers.LoginUser)
	auth.Get("/google", controllers.GoogleLogin)
	auth.Get("/google/callback", controllers.GoogleCallback)
	auth.Post("/logout", middleware.AuthJWT, controllers.Logout)
	auth.Get("/me", middleware.AuthJWT, controllers.Me)
}
