package models

import (
	"time"
)

// Site is a job board or job opportunity platform being investigated.
type Site struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string   `gorm:"not null" json:"name"`
	URL         string   `gorm:"not null" json:"url"`
	SiteType    SiteType `gorm:"type:varchar(20);not null" json:"site_type"`
	Country     Country  `gorm:"type:varchar(10);not null" json:"country"`
	Language    Language `gorm:"type:varchar(10);not null" json:"language"`
	WorkArea    WorkArea `gorm:"type:varchar(20);not null" json:"work_area"`
	Description string   `gorm:"type:text" json:"description"`
	IsCompleted bool     `gorm:"default:false" json:"is_completed"`
	Visited     bool     `gorm:"default:false" json:"visited"`

	// 'omitempty' prevents loops when fetching a Site -> Applications -> Site -> ...
	Applications []Application `gorm:"foreignKey:JobSiteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"applications,omitempty"`
}

// Application is a single job application submitted through a Site.
type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Foreign Key
	JobSiteID uint `gorm:"not null" json:"job_site"`
	// Association: GORM needs Preload() to fill this
	JobSite Site `json:"-"`

	Position    string            `gorm:"not null" json:"position"`
	Company     string            `gorm:"not null" json:"company"`
	JobURL      string            `json:"job_url"`
	Description string            `gorm:"type:text" json:"description"`
	SalaryRange string            `json:"salary_range"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	AppliedDate time.Time         `gorm:"autoCreateTime" json:"applied_date"`
	Notes       string            `gorm:"type:text" json:"notes"`
	IsArchived  bool              `gorm:"default:false" json:"is_archived"`

	Timeline []TimelineEvent `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"timeline,omitempty"`
}

// TimelineEvent is one dated event in an Application's history.
// Events are immutable once created; there is no update path.
type TimelineEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ApplicationID uint        `gorm:"not null" json:"application"`
	Application   Application `json:"-"`

	EventType   EventType `gorm:"type:varchar(30);not null" json:"event_type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"autoCreateTime" json:"date"`
}
