package scenarioValidator

import (
	"finlit/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CompleteScenario validator middleware
func CompleteScenario() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username   string `json:"username"`
			ScenarioID uint   `json:"scenario_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if reqData.ScenarioID == 0 {
			errors["scenario_id"] = "Scenario ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
