package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjoly/scolaris/internal/app/models/dto"
	"github.com/mjoly/scolaris/internal/app/services"
	"github.com/mjoly/scolaris/internal/middleware"
)

// DashboardController handles the aggregation views
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// AdminOverview returns the school-wide statistics
func (c *DashboardController) AdminOverview(ctx *gin.Context) {
	overview, err := c.dashboardService.AdminOverview(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}

// StudentOverview returns one student's personal statistics
func (c *DashboardController) StudentOverview(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	overview, err := c.dashboardService.StudentOverview(ctx.Request.Context(), middleware.CurrentAccount(ctx), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(overview))
}
