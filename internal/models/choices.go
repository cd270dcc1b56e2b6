package models

// SiteType classifies where a job opportunity was discovered.
type SiteType string

const (
	SiteTypeJobBoard  SiteType = "job_board"
	SiteTypeCompany   SiteType = "company"
	SiteTypeChallenge SiteType = "challenge"
	SiteTypeFreelance SiteType = "freelance"
)

func (t SiteType) Valid() bool {
	switch t {
	case SiteTypeJobBoard, SiteTypeCompany, SiteTypeChallenge, SiteTypeFreelance:
		return true
	}
	return false
}

// Country is the country of origin or focus of a job site.
type Country string

const (
	CountryBR    Country = "BR"
	CountryUS    Country = "US"
	CountryCA    Country = "CA"
	CountryUK    Country = "UK"
	CountryDE    Country = "DE"
	CountryFR    Country = "FR"
	CountryES    Country = "ES"
	CountryPT    Country = "PT"
	CountryOther Country = "OTHER"
)

func (c Country) Valid() bool {
	switch c {
	case CountryBR, CountryUS, CountryCA, CountryUK, CountryDE, CountryFR, CountryES, CountryPT, CountryOther:
		return true
	}
	return false
}

// Language is the main language of a job site.
type Language string

const (
	LanguagePT    Language = "pt"
	LanguageEN    Language = "en"
	LanguageES    Language = "es"
	LanguageFR    Language = "fr"
	LanguageDE    Language = "de"
	LanguageOther Language = "other"
)

func (l Language) Valid() bool {
	switch l {
	case LanguagePT, LanguageEN, LanguageES, LanguageFR, LanguageDE, LanguageOther:
		return true
	}
	return false
}

// WorkArea is the main professional field a job site covers.
type WorkArea string

const (
	WorkAreaTech      WorkArea = "tech"
	WorkAreaDesign    WorkArea = "design"
	WorkAreaMarketing WorkArea = "marketing"
	WorkAreaSales     WorkArea = "sales"
	WorkAreaFinance   WorkArea = "finance"
	WorkAreaHR        WorkArea = "hr"
	WorkAreaGeneral   WorkArea = "general"
)

func (w WorkArea) Valid() bool {
	switch w {
	case WorkAreaTech, WorkAreaDesign, WorkAreaMarketing, WorkAreaSales, WorkAreaFinance, WorkAreaHR, WorkAreaGeneral:
		return true
	}
	return false
}

// ApplicationStatus tracks where an application stands.
// Status and the archive flag are independent: a rejected application
// is not archived automatically.
type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusPending   ApplicationStatus = "pending"
	StatusArchived  ApplicationStatus = "archived"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusRejected, StatusAccepted, StatusPending, StatusArchived:
		return true
	}
	return false
}

// EventType classifies a timeline event.
type EventType string

const (
	EventApplied            EventType = "applied"
	EventViewed             EventType = "viewed"
	EventInterviewScheduled EventType = "interview_scheduled"
	EventInterviewCompleted EventType = "interview_completed"
	EventFeedback           EventType = "feedback"
	EventRejected           EventType = "rejected"
	EventAccepted           EventType = "accepted"
	EventOther              EventType = "other"
)

func (e EventType) Valid() bool {
	switch e {
	case EventApplied, EventViewed, EventInterviewScheduled, EventInterviewCompleted,
		EventFeedback, EventRejected, EventAccepted, EventOther:
		return true
	}
	return false
}
