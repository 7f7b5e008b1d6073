package handlers

import (
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/SscSPs/networth_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// Every request is scoped to the single configured owner
	v1 := r.Group("/api/v1", middleware.OwnerMiddleware(cfg.OwnerUserID))
	v1.GET("", getHome)

	rc := newReadCache(cfg.QueryCacheTTL)

	registerAssetRoutes(v1, service.Asset, rc)
	registerDebtRoutes(v1, service.Debt, rc)
	registerTransactionRoutes(v1, service.Transaction, rc)
	registerDashboardRoutes(v1, service.Dashboard, rc)
	registerProfileRoutes(v1, service.Profile)
}
