package services

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/huntboard/huntboard/internal/database"
	"github.com/huntboard/huntboard/internal/models"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// cache=shared keeps the database alive across the pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedSite(t *testing.T, db *gorm.DB) *models.Site {
	t.Helper()
	site := &models.Site{
		Name:     "Acme Boards",
		URL:      "https://acme.example",
		SiteType: models.SiteTypeJobBoard,
		Country:  models.CountryUS,
		Language: models.LanguageEN,
		WorkArea: models.WorkAreaTech,
	}
	require.NoError(t, db.Create(site).Error)
	return site
}

func seedApplication(t *testing.T, db *gorm.DB, siteID uint, mutate func(*models.Application)) *models.Application {
	t.Helper()
	app := &models.Application{
		JobSiteID: siteID,
		Position:  "Backend Engineer",
		Company:   "Acme Inc",
		Status:    models.StatusApplied,
	}
	if mutate != nil {
		mutate(app)
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

func seedEvent(t *testing.T, db *gorm.DB, appID uint, mutate func(*models.TimelineEvent)) *models.TimelineEvent {
	t.Helper()
	event := &models.TimelineEvent{
		ApplicationID: appID,
		EventType:     models.EventApplied,
		Title:         "Application sent",
	}
	if mutate != nil {
		mutate(event)
	}
	require.NoError(t, db.Create(event).Error)
	return event
}
