package userRoutes

import (
	authController "finlit/controllers/auth"
	userProfileController "finlit/controllers/userControllers"
	"finlit/middleware"
	authValidator "finlit/validators/auth"
	userValidator "finlit/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Post("/register", authValidator.Register(), authController.Register)
	userGroup.Post("/login", authValidator.Login(), authController.Login)
	userGroup.Post("/add_xp", userValidator.AddXP(), middleware.JWTMiddleware, userProfileController.AddXP)
	userGroup.Get("/profile", middleware.JWTMiddleware, userProfileController.GetProfile)
}
