package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huntboard/huntboard/internal/dtos"
	"github.com/huntboard/huntboard/internal/services"
)

type SiteHandler struct {
	SiteService *services.SiteService
}

func NewSiteHandler(s *services.SiteService) *SiteHandler {
	return &SiteHandler{SiteService: s}
}

// Create is the POST /job-sites endpoint
func (h *SiteHandler) Create(c *gin.Context) {
	var req dtos.SiteCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	site, err := h.SiteService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, site)
}

func (h *SiteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	site, err := h.SiteService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.SiteService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

func (h *SiteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dtos.SiteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	site, err := h.SiteService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (h *SiteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.SiteService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DashboardStats is the GET /job-sites/dashboard_stats endpoint
func (h *SiteHandler) DashboardStats(c *gin.Context) {
	stats, err := h.SiteService.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// MarkVisited is the POST /job-sites/:id/mark_visited endpoint
func (h *SiteHandler) MarkVisited(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ack, err := h.SiteService.MarkVisited(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": ack})
}

// MarkCompleted is the POST /job-sites/:id/mark_completed endpoint
func (h *SiteHandler) MarkCompleted(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ack, err := h.SiteService.MarkCompleted(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": ack})
}
