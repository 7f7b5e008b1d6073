package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	cache            *readCache
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, rc *readCache) {
	h := &dashboardHandler{dashboardService: dashboardService, cache: rc}
	rg.GET("/dashboard", h.getDashboard)
}

func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	key := cacheKey("dashboard", userID)
	if cached, found := h.cache.get(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	gen := h.cache.generation()

	dashboard, err := h.dashboardService.ComputeDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "compute dashboard")
		return
	}

	res := dto.ToDashboardResponse(dashboard)
	h.cache.set(key, res, gen)
	c.JSON(http.StatusOK, res)
}
