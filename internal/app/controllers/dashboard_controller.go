package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/middleware"
)

// DashboardController serves the aggregated per-faculty summary
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats returns counts, teaching years, citation metrics and the recent
// activity feed for one faculty
func (ctrl *DashboardController) GetStats(c *gin.Context) {
	facultyID, err := parseIDParam(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stats, err := ctrl.dashboardService.GetStats(c.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
