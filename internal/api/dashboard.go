package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chefincasa/backend/internal/middleware"
	"github.com/chefincasa/backend/internal/service"
)

type DashboardHandler struct {
	dashboard *service.DashboardService
}

func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) RegisterRoutes(chef *gin.RouterGroup) {
	chef.GET("/dashboard", h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	chefID := middleware.ScopedChefID(c)

	stats, err := h.dashboard.Stats(c.Request.Context(), chefID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, stats)
}
