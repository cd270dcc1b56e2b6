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

type SiteService struct {
	DB  *gorm.DB
	log *slog.Logger
}

func NewSiteService(db *gorm.DB, log *slog.Logger) *SiteService {
	return &SiteService{
		DB:  db,
		log: log.With("component", "site_service"),
	}
}

func (s *SiteService) Create(ctx context.Context, req *dtos.SiteCreationRequest) (*dtos.SiteResponse, error) {
	site := models.Site{
		Name:        req.Name,
		URL:         req.URL,
		SiteType:    models.SiteType(req.SiteType),
		Country:     models.Country(req.Country),
		Language:    models.Language(req.Language),
		WorkArea:    models.WorkArea(req.WorkArea),
		Description: req.Description,
	}
	if req.IsCompleted != nil {
		site.IsCompleted = *req.IsCompleted
	}
	if req.Visited != nil {
		site.Visited = *req.Visited
	}
	if err := validateSite(&site); err != nil {
		return nil, err
	}

	if err := s.DB.WithContext(ctx).Create(&site).Error; err != nil {
		return nil, apperrors.NewConstraint("create site: %v", err)
	}
	s.log.Info("site created", slog.Uint64("id", uint64(site.ID)), slog.String("name", site.Name))
	return toSiteResponse(&site, 0), nil
}

func (s *SiteService) Get(ctx context.Context, id uint) (*dtos.SiteResponse, error) {
	var site models.Site
	if err := s.DB.WithContext(ctx).First(&site, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("site %d", id)
		}
		return nil, apperrors.NewInternal("fetch site %d: %v", id, err)
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Where("job_site_id = ?", id).Count(&count).Error; err != nil {
		return nil, apperrors.NewInternal("count applications for site %d: %v", id, err)
	}
	return toSiteResponse(&site, count), nil
}

// List returns all sites, newest first, each with its application count.
func (s *SiteService) List(ctx context.Context) ([]dtos.SiteResponse, error) {
	var sites []models.Site
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&sites).Error; err != nil {
		return nil, apperrors.NewInternal("list sites: %v", err)
	}

	var tallies []struct {
		JobSiteID uint
		Count     int64
	}
	if err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("job_site_id, count(*) as count").
		Group("job_site_id").
		Scan(&tallies).Error; err != nil {
		return nil, apperrors.NewInternal("count applications: %v", err)
	}
	counts := make(map[uint]int64, len(tallies))
	for _, t := range tallies {
		counts[t.JobSiteID] = t.Count
	}

	resp := make([]dtos.SiteResponse, 0, len(sites))
	for i := range sites {
		resp = append(resp, *toSiteResponse(&sites[i], counts[sites[i].ID]))
	}
	return resp, nil
}

func (s *SiteService) Update(ctx context.Context, id uint, req *dtos.SiteUpdateRequest) (*dtos.SiteResponse, error) {
	var site models.Site
	if err := s.DB.WithContext(ctx).First(&site, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("site %d", id)
		}
		return nil, apperrors.NewInternal("fetch site %d: %v", id, err)
	}

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.URL != nil {
		site.URL = *req.URL
	}
	if req.SiteType != nil {
		site.SiteType = models.SiteType(*req.SiteType)
	}
	if req.Country != nil {
		site.Country = models.Country(*req.Country)
	}
	if req.Language != nil {
		site.Language = models.Language(*req.Language)
	}
	if req.WorkArea != nil {
		site.WorkArea = models.WorkArea(*req.WorkArea)
	}
	if req.Description != nil {
		site.Description = *req.Description
	}
	if req.IsCompleted != nil {
		site.IsCompleted = *req.IsCompleted
	}
	if req.Visited != nil {
		site.Visited = *req.Visited
	}
	if err := validateSite(&site); err != nil {
		return nil, err
	}

	// Save refreshes updated_at
	if err := s.DB.WithContext(ctx).Save(&site).Error; err != nil {
		return nil, apperrors.NewConstraint("update site %d: %v", id, err)
	}
	return s.Get(ctx, id)
}

// Delete removes a site together with its applications and their timeline
// events in one transaction; a partially deleted tree is never observable.
func (s *SiteService) Delete(ctx context.Context, id uint) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var site models.Site
		if err := tx.First(&site, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("site %d", id)
			}
			return apperrors.NewInternal("fetch site %d: %v", id, err)
		}

		appIDs := tx.Model(&models.Application{}).Select("id").Where("job_site_id = ?", id)
		if err := tx.Where("application_id IN (?)", appIDs).Delete(&models.TimelineEvent{}).Error; err != nil {
			return apperrors.NewConstraint("delete timeline events for site %d: %v", id, err)
		}
		if err := tx.Where("job_site_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return apperrors.NewConstraint("delete applications for site %d: %v", id, err)
		}
		if err := tx.Delete(&site).Error; err != nil {
			return apperrors.NewConstraint("delete site %d: %v", id, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("site deleted", slog.Uint64("id", uint64(id)))
	return nil
}

// MarkVisited flags a site as visited. Already-visited sites are a no-op
// success, not an error.
func (s *SiteService) MarkVisited(ctx context.Context, id uint) (string, error) {
	return s.setFlag(ctx, id, "visited", "marked as visited")
}

// MarkCompleted flags a site as fully explored.
func (s *SiteService) MarkCompleted(ctx context.Context, id uint) (string, error) {
	return s.setFlag(ctx, id, "is_completed", "marked as completed")
}

func (s *SiteService) setFlag(ctx context.Context, id uint, column, ack string) (string, error) {
	res := s.DB.WithContext(ctx).Model(&models.Site{}).Where("id = ?", id).Update(column, true)
	if res.Error != nil {
		return "", apperrors.NewInternal("update site %d: %v", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return "", apperrors.NewNotFound("site %d", id)
	}
	s.log.Info("site flag set", slog.Uint64("id", uint64(id)), slog.String("flag", column))
	return ack, nil
}

// DashboardStats reports site counts as of the moment of the call.
// Pending is total minus visited: a site counts as pending until it has been
// visited, even if it was already marked completed.
func (s *SiteService) DashboardStats(ctx context.Context) (*dtos.DashboardStats, error) {
	var total, visited, completed int64
	if err := s.DB.WithContext(ctx).Model(&models.Site{}).Count(&total).Error; err != nil {
		return nil, apperrors.NewInternal("count sites: %v", err)
	}
	if err := s.DB.WithContext(ctx).Model(&models.Site{}).Where("visited = ?", true).Count(&visited).Error; err != nil {
		return nil, apperrors.NewInternal("count visited sites: %v", err)
	}
	if err := s.DB.WithContext(ctx).Model(&models.Site{}).Where("is_completed = ?", true).Count(&completed).Error; err != nil {
		return nil, apperrors.NewInternal("count completed sites: %v", err)
	}

	return &dtos.DashboardStats{
		TotalSites:     total,
		VisitedSites:   visited,
		CompletedSites: completed,
		PendingSites:   total - visited,
	}, nil
}

func validateSite(site *models.Site) error {
	if !site.SiteType.Valid() {
		return apperrors.NewValidation("invalid site_type %q", site.SiteType)
	}
	if !site.Country.Valid() {
		return apperrors.NewValidation("invalid country %q", site.Country)
	}
	if !site.Language.Valid() {
		return apperrors.NewValidation("invalid language %q", site.Language)
	}
	if !site.WorkArea.Valid() {
		return apperrors.NewValidation("invalid work_area %q", site.WorkArea)
	}
	return nil
}

func toSiteResponse(site *models.Site, applicationsCount int64) *dtos.SiteResponse {
	return &dtos.SiteResponse{
		ID:                site.ID,
		Name:              site.Name,
		URL:               site.URL,
		SiteType:          string(site.SiteType),
		Country:           string(site.Country),
		Language:          string(site.Language),
		WorkArea:          string(site.WorkArea),
		Description:       site.Description,
		IsCompleted:       site.IsCompleted,
		Visited:           site.Visited,
		ApplicationsCount: applicationsCount,
		CreatedAt:         site.CreatedAt,
		UpdatedAt:         site.UpdatedAt,
	}
}
