package dtos

import "time"

type SiteCreationRequest struct {
	Name     string `json:"name" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
	SiteType string `json:"site_type" binding:"required"`
	Country  string `json:"country" binding:"required"`
	Language string `json:"language" binding:"required"`
	WorkArea string `json:"work_area" binding:"required"`

	// Optional Fields
	Description string `json:"description"`
	IsCompleted *bool  `json:"is_completed"`
	Visited     *bool  `json:"visited"`
}

// SiteUpdateRequest carries a partial update; nil fields are left unchanged.
type SiteUpdateRequest struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	SiteType    *string `json:"site_type"`
	Country     *string `json:"country"`
	Language    *string `json:"language"`
	WorkArea    *string `json:"work_area"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
	Visited     *bool   `json:"visited"`
}

type SiteResponse struct {
	ID                uint      `json:"id"`
	Name              string    `json:"name"`
	URL               string    `json:"url"`
	SiteType          string    `json:"site_type"`
	Country           string    `json:"country"`
	Language          string    `json:"language"`
	WorkArea          string    `json:"work_area"`
	Description       string    `json:"description"`
	IsCompleted       bool      `json:"is_completed"`
	Visited           bool      `json:"visited"`
	ApplicationsCount int64     `json:"applications_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// DashboardStats is the aggregate site report. Pending counts sites not yet
// visited, regardless of the completed flag.
type DashboardStats struct {
	TotalSites     int64 `json:"total_sites"`
	VisitedSites   int64 `json:"visited_sites"`
	CompletedSites int64 `json:"completed_sites"`
	PendingSites   int64 `json:"pending_sites"`
}
