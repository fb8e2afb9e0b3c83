package userValidator

import (
	"finlit/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AddXP validates the XP adjustment request. The amount is deliberately
// unrestricted in sign and magnitude; only presence is checked.
func AddXP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username"`
			Amount   *int   `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "Username is required!"
		}
		if reqData.Amount == nil {
			errors["amount"] = "Amount is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
