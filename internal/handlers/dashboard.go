// internal/handlers/dashboard.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nightmare5831/sales-pipeline/internal/services"
	"github.com/nightmare5831/sales-pipeline/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"stats": h.dashboardService.Stats(),
	})
}
