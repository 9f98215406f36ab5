package api

import (
	"net/http"

	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler holds the analytics service dependency.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetSummary returns the derived dashboard statistics.
// GET /api/v1/analytics
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context())
	if err != nil {
		respondRecordError(c, err, "analytics")
		return
	}
	c.JSON(http.StatusOK, summary)
}
