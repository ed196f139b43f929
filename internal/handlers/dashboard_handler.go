package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moneta/internal/services"
)

// DashboardHandler handles dashboard aggregation requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles the retrieval of the user's dashboard overview
// @Summary     Get dashboard
// @Description Get the authenticated user's accounts, recent transactions per account and category, and aggregate totals
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.DashboardInfo "Dashboard overview"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	info, err := h.dashboardService.GetDashboardInfo(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": info})
}
