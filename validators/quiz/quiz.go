package quizValidator

import (
	"finlit/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion validates question authoring. A question needs at least two
// options, and exactly one of them must be marked correct.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ScenarioID   uint   `json:"scenario"`
			QuestionText string `json:"question_text"`
			XPReward     *int   `json:"xp_reward"`
			Options      []struct {
				OptionText string `json:"option_text"`
				IsCorrect  bool   `json:"is_correct"`
			} `json:"options"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.ScenarioID == 0 {
			errors["scenario"] = "Scenario is required!"
		}
		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}
		if reqData.XPReward != nil && *reqData.XPReward < 0 {
			errors["xp_reward"] = "XP reward must not be negative!"
		}

		if len(reqData.Options) < 2 {
			errors["options"] = "A question needs at least two options!"
		} else {
			correctCount := 0
			for _, opt := range reqData.Options {
				if strings.TrimSpace(opt.OptionText) == "" {
					errors["options"] = "Option text must not be empty!"
					break
				}
				if opt.IsCorrect {
					correctCount++
				}
			}
			if _, ok := errors["options"]; !ok && correctCount != 1 {
				errors["options"] = "Exactly one option must be marked correct!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}

// SubmitAnswer validator middleware
func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint `json:"question_id"`
			OptionID   uint `json:"option_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}

		errors := make(map[string]string)

		if reqData.QuestionID == 0 {
			errors["question_id"] = "Question ID is required!"
		}
		if reqData.OptionID == 0 {
			errors["option_id"] = "Option ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
