package quizRoutes

import (
	quizController "finlit/controllers/quiz"
	"finlit/middleware"
	quizValidator "finlit/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quizzes")

	quizGroup.Get("/questions", quizController.ListQuestions)
	quizGroup.Post("/questions", quizValidator.CreateQuestion(), middleware.JWTMiddleware, quizController.CreateQuestion)
	quizGroup.Post("/answers", quizValidator.SubmitAnswer(), middleware.JWTMiddleware, quizController.SubmitAnswer)
}
