package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huntboard/huntboard/internal/apperrors"
	"github.com/huntboard/huntboard/internal/dtos"
	"github.com/huntboard/huntboard/internal/models"
)

func TestApplicationService_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	app, err := svc.Create(ctx, &dtos.ApplicationCreationRequest{
		JobSiteID: site.ID,
		Position:  "Backend Engineer",
		Company:   "Acme Inc",
	})
	require.NoError(t, err)
	assert.NotZero(t, app.ID)
	assert.Equal(t, "applied", app.Status)
	assert.False(t, app.IsArchived)
	assert.Equal(t, site.ID, app.JobSiteID)
	assert.Equal(t, "Acme Boards", app.JobSiteName)
	assert.False(t, app.AppliedDate.IsZero())
	assert.Empty(t, app.Timeline)
}

func TestApplicationService_Create_MissingSite(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.ApplicationCreationRequest{
		JobSiteID: 999,
		Position:  "Backend Engineer",
		Company:   "Acme Inc",
	})
	assert.True(t, apperrors.IsNotFound(err), "want not-found, got %v", err)

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Count(&count).Error)
	assert.Zero(t, count, "failed create must not persist a record")
}

func TestApplicationService_Create_InvalidStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	_, err := svc.Create(ctx, &dtos.ApplicationCreationRequest{
		JobSiteID: site.ID,
		Position:  "Backend Engineer",
		Company:   "Acme Inc",
		Status:    "ghosted",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplicationService_ArchiveFlow(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	app, err := svc.Create(ctx, &dtos.ApplicationCreationRequest{
		JobSiteID: site.ID,
		Position:  "Backend Engineer",
		Company:   "Acme Inc",
	})
	require.NoError(t, err)

	ack, err := svc.Archive(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "archived", ack)

	// archiving leaves the status untouched
	got, err := svc.Get(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "applied", got.Status)
	assert.True(t, got.IsArchived)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalApplications)
	assert.EqualValues(t, 1, stats.Archived)
	require.Len(t, stats.ByStatus, 1)
	assert.Equal(t, "applied", stats.ByStatus[0].Status)
	assert.EqualValues(t, 1, stats.ByStatus[0].Count)

	ack, err = svc.Unarchive(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "unarchived", ack)

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, app.ID, active[0].ID)
}

func TestApplicationService_Transitions_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()

	_, err := svc.Archive(ctx, 42)
	assert.True(t, apperrors.IsNotFound(err))
	_, err = svc.Unarchive(ctx, 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_ListActive_OrderingAndNesting(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	older := seedApplication(t, db, site.ID, func(a *models.Application) {
		a.AppliedDate = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	newer := seedApplication(t, db, site.ID, func(a *models.Application) {
		a.Position = "Platform Engineer"
		a.AppliedDate = time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	})
	archived := seedApplication(t, db, site.ID, func(a *models.Application) {
		a.IsArchived = true
		a.AppliedDate = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	})

	early := seedEvent(t, db, older.ID, func(e *models.TimelineEvent) {
		e.Date = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	late := seedEvent(t, db, older.ID, func(e *models.TimelineEvent) {
		e.EventType = models.EventInterviewScheduled
		e.Title = "Interview scheduled"
		e.Date = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	})

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, newer.ID, active[0].ID, "most recently applied first")
	assert.Equal(t, older.ID, active[1].ID)
	for _, a := range active {
		assert.NotEqual(t, archived.ID, a.ID)
		assert.Equal(t, "Acme Boards", a.JobSiteName)
	}

	// nested timeline, newest event first
	require.Len(t, active[1].Timeline, 2)
	assert.Equal(t, late.ID, active[1].Timeline[0].ID)
	assert.Equal(t, early.ID, active[1].Timeline[1].ID)
}

func TestApplicationService_Stats_NoZeroGroups(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	seedApplication(t, db, site.ID, nil)
	seedApplication(t, db, site.ID, nil)
	seedApplication(t, db, site.ID, func(a *models.Application) { a.Status = models.StatusRejected })

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalApplications)
	assert.EqualValues(t, 0, stats.Archived)

	var sum int64
	for _, g := range stats.ByStatus {
		assert.NotZero(t, g.Count, "observed groups only, no zero-count entries")
		sum += g.Count
	}
	assert.Equal(t, stats.TotalApplications, sum)
	require.Len(t, stats.ByStatus, 2)
}

func TestApplicationService_Update(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)
	app := seedApplication(t, db, site.ID, nil)

	status := "interview"
	notes := "phone screen next week"
	updated, err := svc.Update(ctx, app.ID, &dtos.ApplicationUpdateRequest{Status: &status, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "interview", updated.Status)
	assert.Equal(t, "phone screen next week", updated.Notes)
	assert.Equal(t, "Backend Engineer", updated.Position)

	bad := "ghosted"
	_, err = svc.Update(ctx, app.ID, &dtos.ApplicationUpdateRequest{Status: &bad})
	assert.True(t, apperrors.IsValidation(err))

	missing := uint(999)
	_, err = svc.Update(ctx, app.ID, &dtos.ApplicationUpdateRequest{JobSiteID: &missing})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Update(ctx, 999, &dtos.ApplicationUpdateRequest{Status: &status})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_Delete_CascadesEvents(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)

	doomed := seedApplication(t, db, site.ID, nil)
	survivor := seedApplication(t, db, site.ID, nil)
	seedEvent(t, db, doomed.ID, nil)
	kept := seedEvent(t, db, survivor.ID, nil)

	require.NoError(t, svc.Delete(ctx, doomed.ID))

	var events []models.TimelineEvent
	require.NoError(t, db.Find(&events).Error)
	require.Len(t, events, 1)
	assert.Equal(t, kept.ID, events[0].ID)

	err := svc.Delete(ctx, doomed.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
