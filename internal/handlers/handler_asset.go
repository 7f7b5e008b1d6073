package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
	cache        *readCache
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, rc *readCache) {
	h := &assetHandler{assetService: assetService, cache: rc}

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.POST("", h.createAsset)
		assets.GET("/:id", h.getAsset)
		assets.PATCH("/:id", h.updateAsset)
		assets.DELETE("/:id", h.deleteAsset)
	}
}

func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	key := cacheKey("assets", userID)
	if cached, found := h.cache.get(key); found {
		c.JSON(http.StatusOK, cached)
		return
	}
	gen := h.cache.generation()

	assets, err := h.assetService.ListAssets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "list assets")
		return
	}

	res := dto.ToAssetResponses(assets)
	h.cache.set(key, res, gen)
	logger.Debug("Assets listed", slog.Int("count", len(res)))
	c.JSON(http.StatusOK, res)
}

func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	id, err := h.assetService.CreateAsset(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, logger, err, "create asset")
		return
	}
	h.cache.invalidate()

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, logger, err, "retrieve asset")
		return
	}

	logger.Info("Asset created successfully", slog.String("asset_id", id))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}
	assetID := c.Param("id")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	if err := h.assetService.UpdateAsset(c.Request.Context(), userID, assetID, req.ToPatch()); err != nil {
		respondError(c, logger, err, "update asset")
		return
	}
	h.cache.invalidate()

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), userID, assetID)
	if err != nil {
		respondError(c, logger, err, "retrieve asset")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) deleteAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	if err := h.assetService.DeleteAsset(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, logger, err, "delete asset")
		return
	}
	h.cache.invalidate()
	c.Status(http.StatusNoContent)
}
