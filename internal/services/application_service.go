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

type ApplicationService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewApplicationService(db *gorm.DB, log *slog.Logger) *ApplicationService {
	return &ApplicationService{
		DB:  db,
		log: log.With("component", "application_service"),
	}
}

// Create records a new application against an existing site. A missing site
// fails with NotFound before anything is persisted.
func (s *ApplicationService) Create(ctx context.Context, req *dtos.ApplicationCreationRequest) (*dtos.ApplicationResponse, error) {
	var site models.Site
	if err := s.DB.WithContext(ctx).First(&site, req.JobSiteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("site %d", req.JobSiteID)
		}
		return nil, apperrors.NewInternal("fetch site %d: %v", req.JobSiteID, err)
	}

	app := models.Application{
		JobSiteID:   req.JobSiteID,
		Position:    req.Position,
		Company:     req.Company,
		JobURL:      req.JobURL,
		Description: req.Description,
		SalaryRange: req.SalaryRange,
		Status:      models.ApplicationStatus(req.Status),
		Notes:       req.Notes,
	}
	if app.Status == "" {
		app.Status = models.StatusApplied
	}
	if !app.Status.Valid() {
		return nil, apperrors.NewValidation("invalid status %q", app.Status)
	}

	if err := s.DB.WithContext(ctx).Create(&app).Error; err != nil {
		return nil, apperrors.NewConstraint("create application: %v", err)
	}
	s.log.Info("application created",
		slog.Uint64("id", uint64(app.ID)),
		slog.String("position", app.Position),
		slog.String("company", app.Company))

	app.JobSite = site
	return toApplicationResponse(&app), nil
}

func (s *ApplicationService) Get(ctx context.Context, id uint) (*dtos.ApplicationResponse, error) {
	var app models.Application
	err := s.applicationQuery(ctx).First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("application %d", id)
		}
		return nil, apperrors.NewInternal("fetch application %d: %v", id, err)
	}
	return toApplicationResponse(&app), nil
}

// List returns all applications, most recently applied first.
func (s *ApplicationService) List(ctx context.Context) ([]dtos.ApplicationResponse, error) {
	var apps []models.Application
	if err := s.applicationQuery(ctx).Order("applied_date DESC").Find(&apps).Error; err != nil {
		return nil, apperrors.NewInternal("list applications: %v", err)
	}
	return toApplicationResponses(apps), nil
}

// ListActive returns non-archived applications, most recently applied first,
// each carrying its ordered timeline and the owning site's name.
func (s *ApplicationService) ListActive(ctx context.Context) ([]dtos.ApplicationResponse, error) {
	var apps []models.Application
	err := s.applicationQuery(ctx).
		Where("is_archived = ?", false).
		Order("applied_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.NewInternal("list active applications: %v", err)
	}
	return toApplicationResponses(apps), nil
}

func (s *ApplicationService) Update(ctx context.Context, id uint, req *dtos.ApplicationUpdateRequest) (*dtos.ApplicationResponse, error) {
	var app models.Application
	if err := s.DB.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("application %d", id)
		}
		return nil, apperrors.NewInternal("fetch application %d: %v", id, err)
	}

	updates := map[string]interface{}{}
	if req.JobSiteID != nil {
		var site models.Site
		if err := s.DB.WithContext(ctx).First(&site, *req.JobSiteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFound("site %d", *req.JobSiteID)
			}
			return nil, apperrors.NewInternal("fetch site %d: %v", *req.JobSiteID, err)
		}
		updates["job_site_id"] = *req.JobSiteID
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.JobURL != nil {
		updates["job_url"] = *req.JobURL
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SalaryRange != nil {
		updates["salary_range"] = *req.SalaryRange
	}
	if req.Status != nil {
		status := models.ApplicationStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation("invalid status %q", status)
		}
		updates["status"] = status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.IsArchived != nil {
		updates["is_archived"] = *req.IsArchived
	}

	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(&app).Updates(updates).Error; err != nil {
			return nil, apperrors.NewConstraint("update application %d: %v", id, err)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes an application and its timeline events in one transaction.
func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app models.Application
		if err := tx.First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("application %d", id)
			}
			return apperrors.NewInternal("fetch application %d: %v", id, err)
		}
		if err := tx.Where("application_id = ?", id).Delete(&models.TimelineEvent{}).Error; err != nil {
			return apperrors.NewConstraint("delete timeline events for application %d: %v", id, err)
		}
		if err := tx.Delete(&app).Error; err != nil {
			return apperrors.NewConstraint("delete application %d: %v", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("application deleted", slog.Uint64("id", uint64(id)))
	return nil
}

// Archive hides an application from the active listing. The status field is
// left untouched; archiving and status are independent.
func (s *ApplicationService) Archive(ctx context.Context, id uint) (string, error) {
	return s.setArchived(ctx, id, true, "archived")
}

// Unarchive returns an application to the active listing.
func (s *ApplicationService) Unarchive(ctx context.Context, id uint) (string, error) {
	return s.setArchived(ctx, id, false, "unarchived")
}

func (s *ApplicationService) setArchived(ctx context.Context, id uint, archived bool, ack string) (string, error) {
	res := s.DB.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Update("is_archived", archived)
	if res.Error != nil {
		return "", apperrors.NewInternal("update application %d: %v", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", apperrors.NewNotFound("application %d", id)
	}
	s.log.Info("application archive flag set", slog.Uint64("id", uint64(id)), slog.Bool("archived", archived))
	return ack, nil
}

// Stats reports application counts as of the moment of the call. ByStatus
// reflects only statuses present in the data.
func (s *ApplicationService) Stats(ctx context.Context) (*dtos.ApplicationStats, error) {
	var total, archived int64
	if err := s.DB.WithContext(ctx).Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, apperrors.NewInternal("count applications: %v", err)
	}
	if err := s.DB.WithContext(ctx).Model(&models.Application{}).Where("is_archived = ?", true).Count(&archived).Error; err != nil {
		return nil, apperrors.NewInternal("count archived applications: %v", err)
	}

	byStatus := []dtos.StatusCount{}
	err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Order("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, apperrors.NewInternal("count applications by status: %v", err)
	}

	return &dtos.ApplicationStats{
		TotalApplications: total,
		ByStatus:          byStatus,
		Archived:          archived,
	}, nil
}

// applicationQuery preloads the owning site and the timeline, newest event
// first, so every read carries the full representation.
func (s *ApplicationService) applicationQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Preload("JobSite").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC")
		})
}

func toApplicationResponse(app *models.Application) *dtos.ApplicationResponse {
	timeline := make([]dtos.TimelineEventResponse, 0, len(app.Timeline))
	for i := range app.Timeline {
		timeline = append(timeline, *toTimelineEventResponse(&app.Timeline[i]))
	}
	return &dtos.ApplicationResponse{
		ID:          app.ID,
		JobSiteID:   app.JobSiteID,
		JobSiteName: app.JobSite.Name,
		Position:    app.Position,
		Company:     app.Company,
		JobURL:      app.JobURL,
		Description: app.Description,
		SalaryRange: app.SalaryRange,
		Status:      string(app.Status),
		AppliedDate: app.AppliedDate,
		Notes:       app.Notes,
		IsArchived:  app.IsArchived,
		Timeline:    timeline,
	}
}

func toApplicationResponses(apps []models.Application) []dtos.ApplicationResponse {
	resp := make([]dtos.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, *toApplicationResponse(&apps[i]))
	}
	return resp
}
