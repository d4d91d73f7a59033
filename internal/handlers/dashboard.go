package handlers

import (
	"vitalcare-server/internal/middleware"
	"vitalcare-server/internal/services"
	"vitalcare-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the doctor dashboard rollups.
type DashboardHandler struct {
	Dashboard *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// GetSummary handles GET /dashboard/summary.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	doctorID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Doctor ID not found in token")
		return
	}

	summary, err := h.Dashboard.Summary(c.Request.Context(), doctorID)
	if err != nil {
		utils.ServiceError(c, err)
		return
	}

	utils.Success(c, "Dashboard summary fetched successfully", summary)
}
