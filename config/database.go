package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/civic-lens/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates the schema. TranslateError
// is required: the reaction insert path relies on gorm.ErrDuplicatedKey
// to detect a lost race on the (user_id, report_id) unique index.
func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Report{},
		&models.Comment{},
		&models.Reaction{},
		&models.Notification{},
	); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	return db
}
