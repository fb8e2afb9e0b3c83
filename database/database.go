package database

import (
	"finlit/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	// Build the PostgreSQL connection string
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	RunMigrations(db)

	// Seed the fixed scenario catalog
	if err := SeedScenarios(db); err != nil {
		log.Fatalf("Scenario seeding failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// RunMigrations performs database migrations
func RunMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.LoginTracking{},
		&models.Scenario{},
		&models.UserScenarioProgress{},
		&models.QuizQuestion{},
		&models.QuizOption{},
		&models.UserAnswer{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedScenarios inserts the closed scenario set if the catalog is empty
func SeedScenarios(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Scenario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	scenarios := []models.Scenario{
		{Name: models.ScenarioNiya, Description: "Step into the branch as Niya, a bank manager guiding customers through savings accounts, loans and everyday banking decisions."},
		{Name: models.ScenarioRachel, Description: "Work alongside Rachel, a financial advisor helping clients balance budgets, insurance and long-term planning."},
		{Name: models.ScenarioTina, Description: "Trade ideas with Tina, a stock enthusiast exploring markets, risk and the basics of investing."},
	}

	if err := db.Create(&scenarios).Error; err != nil {
		return err
	}

	log.Println("Seeded scenario catalog.")
	return nil
}
