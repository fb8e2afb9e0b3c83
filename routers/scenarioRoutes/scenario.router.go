package scenarioRoutes

import (
	scenarioController "finlit/controllers/scenario"
	scenarioValidator "finlit/validators/scenario"

	"github.com/gofiber/fiber/v2"
)

func SetupScenarioRoutes(app *fiber.App) {
	scenarioGroup := app.Group("/scenarios")

	scenarioGroup.Get("/list", scenarioController.ListScenarios)
	scenarioGroup.Get("/progress", scenarioController.ListProgress)
	scenarioGroup.Post("/progress/complete_scenario", scenarioValidator.CompleteScenario(), scenarioController.CompleteScenario)
}
