package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jjpos/jjpos-api/internal/application/service"
	"github.com/jjpos/jjpos-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the dashboard screen's aggregate figures
type DashboardHandler struct {
	dashboardService *service.DashboardService
	printerService   *service.PrinterService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, printerService *service.PrinterService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		printerService:   printerService,
	}
}

// Stats handles retrieving dashboard sales figures
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// PrinterStatus handles reporting the receipt printer's connection state
func (h *DashboardHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}
