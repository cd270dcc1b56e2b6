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

func TestTimelineService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)
	app := seedApplication(t, db, site.ID, nil)

	event, err := svc.Create(ctx, &dtos.TimelineEventCreationRequest{
		ApplicationID: app.ID,
		EventType:     "interview_scheduled",
		Title:         "Interview scheduled",
	})
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.Equal(t, app.ID, event.ApplicationID)
	assert.False(t, event.Date.IsZero())

	got, err := svc.Get(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "interview_scheduled", got.EventType)
}

func TestTimelineService_Create_MissingApplication(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db, newTestLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, &dtos.TimelineEventCreationRequest{
		ApplicationID: 999,
		EventType:     "applied",
		Title:         "Application sent",
	})
	assert.True(t, apperrors.IsNotFound(err))

	var count int64
	require.NoError(t, db.Model(&models.TimelineEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTimelineService_Create_InvalidEventType(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)
	app := seedApplication(t, db, site.ID, nil)

	_, err := svc.Create(ctx, &dtos.TimelineEventCreationRequest{
		ApplicationID: app.ID,
		EventType:     "carrier_pigeon",
		Title:         "???",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestTimelineService_List_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)
	app := seedApplication(t, db, site.ID, nil)

	early := seedEvent(t, db, app.ID, func(e *models.TimelineEvent) {
		e.Date = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	late := seedEvent(t, db, app.ID, func(e *models.TimelineEvent) {
		e.EventType = models.EventFeedback
		e.Title = "Feedback received"
		e.Date = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	})

	events, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, late.ID, events[0].ID)
	assert.Equal(t, early.ID, events[1].ID)
}

func TestTimelineService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewTimelineService(db, newTestLogger())
	ctx := context.Background()
	site := seedSite(t, db)
	app := seedApplication(t, db, site.ID, nil)
	event := seedEvent(t, db, app.ID, nil)

	require.NoError(t, svc.Delete(ctx, event.ID))

	_, err := svc.Get(ctx, event.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.Delete(ctx, event.ID)
	assert.True(t, apperrors.IsNotFound(err))
}
