package authController

import (
	"finlit/config"
	"finlit/database"
	"finlit/middleware"
	"finlit/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// profileResponse builds the profile representation returned by the auth
// endpoints
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

// Register creates a User and its paired UserProfile in one transaction
func Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Avatar   string `json:"avatar"`
		Goal     string `json:"goal"`
	})

	// Parse Request Body
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Username already exists")
	}

	// Apply profile defaults
	avatar := reqData.Avatar
	if avatar == "" {
		avatar = models.AvatarClara
	}
	goal := reqData.Goal
	if goal == "" {
		goal = models.GoalWealthBuilding
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
	}

	// Create User and Profile together so a failure leaves no orphan User
	tx := db.Begin()

	if err := tx.Create(&newUser).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	profile := models.UserProfile{
		UserID: newUser.ID,
		Avatar: avatar,
		Goal:   goal,
		XP:     0,
	}

	if err := tx.Create(&profile).Error; err != nil {
		tx.Rollback()
		log.Printf("Error saving profile to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Error committing registration: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register user!")
	}

	return c.Status(fiber.StatusCreated).JSON(profileResponse(newUser, profile))
}

// Login validates credentials and returns the profile with a session token
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Failed to parse request body!")
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("username = ?", reqData.Username).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	var profile models.UserProfile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		log.Printf("Profile missing for user %d: %v", user.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Profile not found for user!")
	}

	// Update last login time
	user.LastLogin = time.Now()
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	// Capture login tracking details
	loginTracking := models.LoginTracking{
		UserID:    user.ID,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}

	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate token!")
	}

	response := profileResponse(user, profile)
	response["token"] = token

	return c.Status(fiber.StatusOK).JSON(response)
}
