package scenarioController

import (
	"finlit/database"
	"finlit/middleware"
	"finlit/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

type scenarioResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	NameDisplay string `json:"name_display"`
	Description string `json:"description"`
}

type progressResponse struct {
	ID              uint             `json:"id"`
	User            uint             `json:"user"`
	Scenario        uint             `json:"scenario"`
	ScenarioDetails scenarioResponse `json:"scenario_details"`
	Status          string           `json:"status"`
}

func serializeScenario(s models.Scenario) scenarioResponse {
	return scenarioResponse{
		ID:          s.ID,
		Name:        s.Name,
		NameDisplay: s.DisplayName(),
		Description: s.Description,
	}
}

func serializeProgress(p models.UserScenarioProgress, s models.Scenario) progressResponse {
	return progressResponse{
		ID:              p.ID,
		User:            p.UserID,
		Scenario:        p.ScenarioID,
		ScenarioDetails: serializeScenario(s),
		Status:          p.Status,
	}
}

// ListScenarios returns the full scenario catalog
func ListScenarios(c *fiber.Ctx) error {
	db := database.Database.Db

	var scenarios []models.Scenario
	if err := db.Order("id asc").Find(&scenarios).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch scenarios: "+err.Error())
	}

	response := make([]scenarioResponse, len(scenarios))
	for i, s := range scenarios {
		response[i] = serializeScenario(s)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// ListProgress returns progress rows for the username filter, or for the
// authenticated caller when no filter is given. Unauthenticated, unfiltered
// requests get an empty list rather than the full table.
func ListProgress(c *fiber.Ctx) error {
	db := database.Database.Db

	var userID uint
	if username := c.Query("username"); username != "" {
		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
		}
		userID = user.ID
	} else if callerID, ok := middleware.UserIDFromToken(c); ok {
		userID = callerID
	} else {
		return c.Status(fiber.StatusOK).JSON([]progressResponse{})
	}

	var rows []models.UserScenarioProgress
	if err := db.Where("user_id = ?", userID).Order("id asc").Find(&rows).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch progress: "+err.Error())
	}

	// Resolve scenario details in one query
	var scenarios []models.Scenario
	db.Find(&scenarios)
	scenarioByID := make(map[uint]models.Scenario, len(scenarios))
	for _, s := range scenarios {
		scenarioByID[s.ID] = s
	}

	response := make([]progressResponse, len(rows))
	for i, row := range rows {
		response[i] = serializeProgress(row, scenarioByID[row.ScenarioID])
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// CompleteScenario get-or-creates the progress row for (username, scenario)
// and force-sets it to SOLVED. Calling it again is a no-op on the row count.
func CompleteScenario(c *fiber.Ctx) error {
	reqData := new(struct {
		Username   string `json:"username"`
		ScenarioID uint   `json:"scenario_id"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	var scenario models.Scenario
	if err := db.Where("id = ?", reqData.ScenarioID).First(&scenario).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Scenario not found")
	}

	var progress models.UserScenarioProgress
	err := db.Where("user_id = ? AND scenario_id = ?", user.ID, scenario.ID).First(&progress).Error
	if err != nil {
		progress = models.UserScenarioProgress{
			UserID:     user.ID,
			ScenarioID: scenario.ID,
			Status:     models.StatusSolved,
		}
		if err := db.Create(&progress).Error; err != nil {
			log.Printf("Error creating progress row: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to complete scenario: "+err.Error())
		}
	} else if progress.Status != models.StatusSolved {
		progress.Status = models.StatusSolved
		if err := db.Save(&progress).Error; err != nil {
			log.Printf("Error updating progress row: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to complete scenario: "+err.Error())
		}
	}

	return c.Status(fiber.StatusOK).JSON(serializeProgress(progress, scenario))
}
