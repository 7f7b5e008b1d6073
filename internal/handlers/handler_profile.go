package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: profileService}

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.PUT("", h.updateProfile)
	}
}

func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "retrieve profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := ownerID(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		respondError(c, logger, err, "update profile")
		return
	}

	logger.Info("Profile updated")
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
