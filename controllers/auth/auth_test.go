package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"finlit/config"
	"finlit/database"
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

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	req := jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
		"password": "hunter22",
		"avatar":   models.AvatarMaya,
		"goal":     models.GoalFamilyFund,
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
		Goal     string `json:"goal"`
		XP       int    `json:"xp"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "alice", body.Username)
	require.Equal(t, models.AvatarMaya, body.Avatar)
	require.Equal(t, models.GoalFamilyFund, body.Goal)
	require.Zero(t, body.XP)

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	require.NotEqual(t, "hunter22", user.Password) // stored hashed

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestRegisterAppliesDefaults(t *testing.T) {
	setupTestDb(t)
	app := newUserApp()

	req := jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "bob",
		"password": "hunter22",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Avatar string `json:"avatar"`
		Goal   string `json:"goal"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, models.AvatarClara, body.Avatar)
	require.Equal(t, models.GoalWealthBuilding, body.Goal)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	req := jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
		"password": "hunter22",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
		"password": "different",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var userCount int64
	db.Model(&models.User{}).Where("username = ?", "alice").Count(&userCount)
	require.EqualValues(t, 1, userCount)
}

func TestRegisterRejectsMissingFieldsAndBadEnums(t *testing.T) {
	setupTestDb(t)
	app := newUserApp()

	req := jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
		"password": "hunter22",
		"avatar":   "ROBOT",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	db := setupTestDb(t)
	app := newUserApp()

	req := jsonRequest(t, "POST", "/users/register", fiber.Map{
		"username": "alice",
		"password": "hunter22",
	})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Good credentials return the profile and a token
	req = jsonRequest(t, "POST", "/users/login", fiber.Map{
		"username": "alice",
		"password": "hunter22",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "alice", body.Username)
	require.NotEmpty(t, body.Token)

	var trackingCount int64
	db.Model(&models.LoginTracking{}).Count(&trackingCount)
	require.EqualValues(t, 1, trackingCount)

	// Bad credentials are unauthorized
	req = jsonRequest(t, "POST", "/users/login", fiber.Map{
		"username": "alice",
		"password": "wrong",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Missing fields are a validation error
	req = jsonRequest(t, "POST", "/users/login", fiber.Map{
		"username": "alice",
	})
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
