package userProfileController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"finlit/config"
	"finlit/database"
	"finlit/middleware"
	"finlit/models"
	userRoutes "finlit/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{
		Port:            "3000",
		JWTKey:          "test-secret",
		SaltRound:       4,
		SolveThreshold:  10,
		AllowNegativeXP: true,
	}

	return db
}

func newUserApp() *fiber.App {
	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func createUserWithXP(t *testing.T, db *gorm.DB, username string, xp int) (models.User, string) {
	t.Helper()

	user := models.User{Username: username, Password: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserProfile{
		UserID: user.ID,
		Avatar: models.AvatarClara,
		Goal:   models.GoalWealthBuilding,
		XP:     xp,
	}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestAddXP(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	user, token := createUserWithXP(t, db, "bob", 0)

	req := jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"username": user.Username,
		"amount":   40,
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		XP int `json:"xp"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, 40, body.XP)
}

func TestAddXPAllowsNegativeDelta(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	user, token := createUserWithXP(t, db, "bob", 30)

	req := jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"username": user.Username,
		"amount":   -50,
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		XP int `json:"xp"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, -20, body.XP) // no floor by default
}

func TestAddXPClampsWhenNegativeDisallowed(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()
	config.AppConfig.AllowNegativeXP = false

	user, token := createUserWithXP(t, db, "bob", 30)

	req := jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"username": user.Username,
		"amount":   -50,
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		XP int `json:"xp"`
	}
	decodeBody(t, resp, &body)
	require.Zero(t, body.XP)
}

func TestAddXPErrors(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	_, token := createUserWithXP(t, db, "bob", 0)

	// Unknown user
	req := jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"username": "nobody",
		"amount":   10,
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Missing username
	req = jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"amount": 10,
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Missing amount
	req = jsonRequest(t, "POST", "/users/add_xp", token, fiber.Map{
		"username": "bob",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	user, token := createUserWithXP(t, db, "bob", 15)

	req := jsonRequest(t, "GET", "/users/profile", token, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Username string `json:"username"`
		XP       int    `json:"xp"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, user.Username, body.Username)
	require.Equal(t, 15, body.XP)

	// No token
	req = jsonRequest(t, "GET", "/users/profile", "", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
