package handlers

import (
	"net/http"

	"workflow-portal-backend/internal/database/models"
	"workflow-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves the submission analytics projections
type AnalyticsHandler struct {
	analytics service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Summary handles GET /analytics/summary
// @Summary Completed work summary
// @Description Per active cycle counts of done, pending review, revision and approved items
// @Tags analytics
// @Produce json
// @Success 200 {array} service.CycleSummary
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analytics.CompletedWorkSummary()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WorkCycle handles GET /workcycles/:id/analytics
// @Summary Work cycle analytics
// @Description Computed on first access and refreshed on every submission; refresh=true recomputes now
// @Tags analytics
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Param refresh query bool false "Recompute before returning"
// @Success 200 {object} models.WorkCycleAnalytics
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id}/analytics [get]
func (h *AnalyticsHandler) WorkCycle(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	var (
		stats *models.WorkCycleAnalytics
		err   error
	)
	if c.Query("refresh") == "true" {
		stats, err = h.analytics.RefreshWorkCycle(id, false)
	} else {
		stats, err = h.analytics.GetWorkCycle(id)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Snapshots handles GET /workcycles/:id/analytics/snapshots
// @Summary Work cycle analytics history
// @Tags analytics
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Success 200 {array} models.WorkCycleAnalyticsSnapshot
// @Security BearerAuth
// @Router /workcycles/{id}/analytics/snapshots [get]
func (h *AnalyticsHandler) Snapshots(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	snapshots, err := h.analytics.ListSnapshots(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshots)
}

// Teams handles GET /workcycles/:id/analytics/teams
// @Summary Per-team breakdown of a work cycle
// @Tags analytics
// @Produce json
// @Param id path string true "Work cycle ID (UUID)"
// @Success 200 {array} service.TeamAnalyticsResponse
// @Failure 404 {object} ErrorResponse "Work cycle not found"
// @Security BearerAuth
// @Router /workcycles/{id}/analytics/teams [get]
func (h *AnalyticsHandler) Teams(c *gin.Context) {
	id, ok := pathID(c, "id", "work cycle", respondError)
	if !ok {
		return
	}

	teams, err := h.analytics.TeamBreakdown(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// User handles GET /analytics/users/:id
// @Summary Submission analytics of a user
// @Tags analytics
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} models.UserSubmissionAnalytics
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /analytics/users/{id} [get]
func (h *AnalyticsHandler) User(c *gin.Context) {
	id, ok := pathID(c, "id", "user", respondError)
	if !ok {
		return
	}

	stats, err := h.analytics.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
