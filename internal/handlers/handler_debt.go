package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
	cache       *readCache
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade, rc *readCache) {
	h := &debtHandler{debtService: debtService, cache: rc}

	debts := rg.Group("/debts")
	{
		debts.GET("", h.listDebts)
		debts.POST("", h.createDebt)
		debts.GET("/:id", h.getDebt)
		debts.PATCH("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	key := cacheKey("debts", userID)
	if cached, found := h.cache.get(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	gen := h.cache.generation()

	debts, err := h.debtService.ListDebts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "list debts")
		return
	}

	res := dto.ToDebtResponses(debts)
	h.cache.set(key, res, gen)
	logger.Debug("Debts listed", slog.Int("count", len(res)))
	c.JSON(http.StatusOK, res)
}

func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	id, err := h.debtService.CreateDebt(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, logger, err, "create debt")
		return
	}
	h.cache.invalidate()

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, logger, err, "retrieve debt")
		return
	}

	logger.Info("Debt created successfully", slog.String("debt_id", id))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}
	debtID := c.Param("id")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.debtService.UpdateDebt(c.Request.Context(), userID, debtID, req.ToPatch()); err != nil {
		respondError(c, logger, err, "update debt")
		return
	}
	h.cache.invalidate()

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), userID, debtID)
	if err != nil {
		respondError(c, logger, err, "retrieve debt")
		return
	}
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "delete debt")
		return
	}
	h.cache.invalidate()
	c.Status(http.StatusNoContent)
}
