// Package database provides the GORM Postgres connection for the habit
// tracker.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kedrick07/habit-tracker/internal/config"
	"github.com/kedrick07/habit-tracker/internal/models"
)

// Connect opens the Postgres database and migrates the schema. A
// connection or configuration failure here is fatal to the caller: the
// service does not run without its store.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// TranslateError maps driver duplicate-key failures to
		// gorm.ErrDuplicatedKey so the repositories can detect
		// unique-index conflicts portably.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Habit{}, &models.Completion{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
