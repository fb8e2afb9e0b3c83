package userProfileController

import (
	"finlit/config"
	"finlit/database"
	"finlit/middleware"
	"finlit/models"
	"finlit/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

func profileResponse(user models.User, profile models.UserProfile) fiber.Map {
	return fiber.Map{
		"id":       profile.ID,
		"user":     user.ID,
		"username": user.Username,
		"avatar":   profile.Avatar,
		"goal":     profile.Goal,
		"xp":       profile.XP,
	}
}

// AddXP applies a direct XP adjustment bypassing the answer path. Used for
// out-of-band rewards; the amount is unrestricted unless negative XP is
// disabled in config.
func AddXP(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Amount   int    `json:"amount"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Profile not found for user: "+err.Error())
	}

	profile.XP += reqData.Amount
	if profile.XP < 0 && !config.AppConfig.AllowNegativeXP {
		profile.XP = 0
	}

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error saving XP adjustment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update XP: "+err.Error())
	}

	utils.PushEvent(utils.XPEvent{
		Event:    "XP_ADJUSTED",
		Username: user.Username,
		Amount:   reqData.Amount,
		XPTotal:  profile.XP,
	})

	return c.Status(fiber.StatusOK).JSON(profileResponse(user, profile))
}

// GetProfile returns the authenticated caller's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Profile not found")
	}

	return c.Status(fiber.StatusOK).JSON(profileResponse(user, profile))
}
