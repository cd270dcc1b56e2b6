package dtos

import "time"

type ApplicationCreationRequest struct {
	JobSiteID uint   `json:"job_site" binding:"required"`
	Position  string `json:"position" binding:"required"`
	Company   string `json:"company" binding:"required"`

	// Optional Fields
	JobURL      string `json:"job_url"`
	Description string `json:"description"`
	SalaryRange string `json:"salary_range"`
	Status      string `json:"status"` // Defaults to "applied" if empty
	Notes       string `json:"notes"`
}

// ApplicationUpdateRequest carries a partial update; nil fields are left unchanged.
type ApplicationUpdateRequest struct {
	JobSiteID   *uint   `json:"job_site"`
	Position    *string `json:"position"`
	Company     *string `json:"company"`
	JobURL      *string `json:"job_url"`
	Description *string `json:"description"`
	SalaryRange *string `json:"salary_range"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	IsArchived  *bool   `json:"is_archived"`
}

type ApplicationResponse struct {
	ID          uint                    `json:"id"`
	JobSiteID   uint                    `json:"job_site"`
	JobSiteName string                  `json:"job_site_name"`
	Position    string                  `json:"position"`
	Company     string                  `json:"company"`
	JobURL      string                  `json:"job_url"`
	Description string                  `json:"description"`
	SalaryRange string                  `json:"salary_range"`
	Status      string                  `json:"status"`
	AppliedDate time.Time               `json:"applied_date"`
	Notes       string                  `json:"notes"`
	IsArchived  bool                    `json:"is_archived"`
	Timeline    []TimelineEventResponse `json:"timeline"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ApplicationStats tallies applications by status. ByStatus only holds
// statuses observed in the data; zero-count groups are never reported.
type ApplicationStats struct {
	TotalApplications int64         `json:"total_applications"`
	ByStatus          []StatusCount `json:"by_status"`
	Archived          int64         `json:"archived"`
}
