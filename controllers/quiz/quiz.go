package quizController

import (
	"finlit/database"
	"finlit/middleware"
	"finlit/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

type questionResponse struct {
	ID           uint                `json:"id"`
	Scenario     uint                `json:"scenario"`
	ScenarioName string              `json:"scenario_name"`
	QuestionText string              `json:"question_text"`
	XPReward     int                 `json:"xp_reward"`
	Options      []models.QuizOption `json:"options"`
}

func serializeQuestion(q models.QuizQuestion, s models.Scenario) questionResponse {
	return questionResponse{
		ID:           q.ID,
		Scenario:     q.ScenarioID,
		ScenarioName: s.DisplayName(),
		QuestionText: q.QuestionText,
		XPReward:     q.XPReward,
		Options:      q.Options,
	}
}

// ListQuestions returns the question bank with options, optionally filtered
// by scenario id
func ListQuestions(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Preload("Options").Order("id asc")
	if scenarioID := c.Query("scenario"); scenarioID != "" {
		query = query.Where("scenario_id = ?", scenarioID)
	}

	var questions []models.QuizQuestion
	if err := query.Find(&questions).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch questions: "+err.Error())
	}

	var scenarios []models.Scenario
	db.Find(&scenarios)
	scenarioByID := make(map[uint]models.Scenario, len(scenarios))
	for _, s := range scenarios {
		scenarioByID[s.ID] = s
	}

	response := make([]questionResponse, len(questions))
	for i, q := range questions {
		response[i] = serializeQuestion(q, scenarioByID[q.ScenarioID])
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// CreateQuestion adds a question with its options. A question must carry at
// least two options and exactly one marked correct.
func CreateQuestion(c *fiber.Ctx) error {
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

	db := database.Database.Db

	var scenario models.Scenario
	if err := db.Where("id = ?", reqData.ScenarioID).First(&scenario).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Scenario not found")
	}

	xpReward := 10
	if reqData.XPReward != nil {
		xpReward = *reqData.XPReward
	}

	question := models.QuizQuestion{
		ScenarioID:   scenario.ID,
		QuestionText: reqData.QuestionText,
		XPReward:     xpReward,
	}
	for _, opt := range reqData.Options {
		question.Options = append(question.Options, models.QuizOption{
			OptionText: opt.OptionText,
			IsCorrect:  opt.IsCorrect,
		})
	}

	if err := db.Create(&question).Error; err != nil {
		log.Printf("Error saving question: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create question: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(serializeQuestion(question, scenario))
}

// optionLabel returns the letter label for an option's position in its
// question (A, B, C, ...)
func optionLabel(options []models.QuizOption, optionID uint) string {
	for i, opt := range options {
		if opt.ID == optionID {
			return string(rune('A' + i))
		}
	}
	return ""
}

// SubmitAnswer records the caller's answer to a question, derives correctness
// from the chosen option and runs the XP/progress reconciler in the same
// transaction. A second submission for the same question is rejected.
func SubmitAnswer(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	reqData := new(struct {
		QuestionID uint `json:"question_id"`
		OptionID   uint `json:"option_id"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "User not found")
	}

	var question models.QuizQuestion
	if err := db.Preload("Options").Where("id = ?", reqData.QuestionID).First(&question).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Question not found")
	}

	var selected *models.QuizOption
	for i := range question.Options {
		if question.Options[i].ID == reqData.OptionID {
			selected = &question.Options[i]
			break
		}
	}
	if selected == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Option does not belong to this question")
	}

	// Answers are append-only; re-answering is rejected, not overwritten
	if err := db.Where("user_id = ? AND question_id = ?", user.ID, question.ID).First(&models.UserAnswer{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Question already answered")
	}

	answer := models.UserAnswer{
		UserID:         user.ID,
		QuestionID:     question.ID,
		SelectedOption: optionLabel(question.Options, selected.ID),
		IsCorrect:      selected.IsCorrect,
	}

	tx := db.Begin()

	if err := tx.Create(&answer).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving answer: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Question already answered")
	}

	if err := ApplyAnswerRewards(tx, user, answer, question); err != nil {
		tx.Rollback()
		log.Printf("Reconciler failed for user %d question %d: %v", user.ID, question.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to apply answer rewards: "+err.Error())
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing answer: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit answer!")
	}

	var profile models.UserProfile
	db.Where("user_id = ?", user.ID).First(&profile)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"answer":     answer,
		"is_correct": answer.IsCorrect,
		"profile_xp": profile.XP,
	})
}
