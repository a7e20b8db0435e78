package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/k-abishek/online-shopping/internal/domain"
)

// DashboardHandler serves the aggregate store statistics. Stats are
// refetched on every visit; nothing is cached.
type DashboardHandler struct {
	dashboardAPI domain.DashboardAPI
	log          *logrus.Logger
}

func NewDashboardHandler(dashboardAPI domain.DashboardAPI, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardAPI: dashboardAPI,
		log:          logger,
	}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/dashboard", h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardAPI.GetStats(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to fetch dashboard stats: %v", err)
		ErrorResponse(c, mapErrorToStatus(err),
			"Failed to fetch dashboard statistics. Please ensure the backend is running.")
		return
	}
	SuccessResponse(c, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
