package dtos

import "time"

type TimelineEventCreationRequest struct {
	ApplicationID uint   `json:"application" binding:"required"`
	EventType     string `json:"event_type" binding:"required"`
	Title         string `json:"title" binding:"required"`

	// Optional Fields
	Description string `json:"description"`
}

type TimelineEventResponse struct {
	ID            uint      `json:"id"`
	ApplicationID uint      `json:"application"`
	EventType     string    `json:"event_type"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
}
