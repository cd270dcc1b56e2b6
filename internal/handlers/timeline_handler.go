package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntboard/huntboard/internal/dtos"
	"github.com/huntboard/huntboard/internal/services"
)

// TimelineHandler exposes create/read/delete for timeline events. There is no
// update route: events are immutable once recorded.
type TimelineHandler struct {
	TimelineService *services.TimelineService
}

func NewTimelineHandler(s *services.TimelineService) *TimelineHandler {
	return &TimelineHandler{TimelineService: s}
}

// Create is the POST /timeline endpoint
func (h *TimelineHandler) Create(c *gin.Context) {
	var req dtos.TimelineEventCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	event, err := h.TimelineService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *TimelineHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.TimelineService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *TimelineHandler) List(c *gin.Context) {
	events, err := h.TimelineService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *TimelineHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.TimelineService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
