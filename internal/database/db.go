package database

import (
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/huntboard/huntboard/internal/config"
	"github.com/huntboard/huntboard/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
func Connect(cfg config.DBConfig, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Info("database connection established", slog.String("host", cfg.Host), slog.String("db", cfg.Name))

	// Migration: creates the tables in Postgres automatically
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the schema for all tracked record types.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Site{}, &models.Application{}, &models.TimelineEvent{})
}
