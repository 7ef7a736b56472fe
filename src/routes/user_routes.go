package routes

import (
	"Backend-CorpsConnect/src/controllers"
	"Backend-CorpsConnect/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(app *fiber.App) {
	users := app.Group("/api/users", middleware.AuthJWT)

	users.Put("/profile", controllers.UpdateProfile)
	users.Post("/profile/picture", controllers.UploadProfilePicture)

	onboarding := app.Group("/api/onboarding", middleware.AuthJWT)
	onboarding.Get("/progress", controllers.GetOnboardingProgress)
	onboarding.Put("/step", controllers.SaveOnboardingStep)
	onboarding.Post("/complete", controllers.CompleteOnboarding)
}
