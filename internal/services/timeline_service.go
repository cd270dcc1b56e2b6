package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/huntboard/huntboard/internal/apperrors"
	"github.com/huntboard/huntboard/internal/dtos"
	"github.com/huntboard/huntboard/internal/models"
)

type TimelineService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewTimelineService(db *gorm.DB, log *slog.Logger) *TimelineService {
	return &TimelineService{
		DB:  db,
		log: log.With("component", "timeline_service"),
	}
}

// Create records an event against an existing application. Events cannot be
// edited afterwards, only deleted.
func (s *TimelineService) Create(ctx context.Context, req *dtos.TimelineEventCreationRequest) (*dtos.TimelineEventResponse, error) {
	var app models.Application
	if err := s.DB.WithContext(ctx).First(&app, req.ApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("application %d", req.ApplicationID)
		}
		return nil, apperrors.NewInternal("fetch application %d: %v", req.ApplicationID, err)
	}

	event := models.TimelineEvent{
		ApplicationID: req.ApplicationID,
		EventType:     models.EventType(req.EventType),
		Title:         req.Title,
		Description:   req.Description,
	}
	if !event.EventType.Valid() {
		return nil, apperrors.NewValidation("invalid event_type %q", event.EventType)
	}

	if err := s.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, apperrors.NewConstraint("create timeline event: %v", err)
	}
	s.log.Info("timeline event created",
		slog.Uint64("id", uint64(event.ID)),
		slog.Uint64("application", uint64(event.ApplicationID)),
		slog.String("event_type", string(event.EventType)))
	return toTimelineEventResponse(&event), nil
}

func (s *TimelineService) Get(ctx context.Context, id uint) (*dtos.TimelineEventResponse, error) {
	var event models.TimelineEvent
	if err := s.DB.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("timeline event %d", id)
		}
		return nil, apperrors.NewInternal("fetch timeline event %d: %v", id, err)
	}
	return toTimelineEventResponse(&event), nil
}

// List returns all timeline events, newest first.
func (s *TimelineService) List(ctx context.Context) ([]dtos.TimelineEventResponse, error) {
	var events []models.TimelineEvent
	if err := s.DB.WithContext(ctx).Order("date DESC").Find(&events).Error; err != nil {
		return nil, apperrors.NewInternal("list timeline events: %v", err)
	}
	resp := make([]dtos.TimelineEventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, *toTimelineEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *TimelineService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.TimelineEvent{}, id)
	if res.Error != nil {
		return apperrors.NewConstraint("delete timeline event %d: %v", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("timeline event %d", id)
	}
	s.log.Info("timeline event deleted", slog.Uint64("id", uint64(id)))
	return nil
}

func toTimelineEventResponse(event *models.TimelineEvent) *dtos.TimelineEventResponse {
	return &dtos.TimelineEventResponse{
		ID:            event.ID,
		ApplicationID: event.ApplicationID,
		EventType:     string(event.EventType),
		Title:         event.Title,
		Description:   event.Description,
		Date:          event.Date,
	}
}
