package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ownerID returns the owner scope set by middleware.OwnerMiddleware, or writes 401.
func ownerID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// respondError writes the JSON error for err. Server-side failures get a
// generic message built from action; client errors echo the cause.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	switch {
	case status >= http.StatusInternalServerError && errors.Is(err, apperrors.ErrNotReady):
		logger.Error("Storage not ready", slog.String("action", action))
		c.JSON(status, gin.H{"error": "Storage is not ready"})
	case status >= http.StatusInternalServerError:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
	default:
		logger.Warn("Rejected request to "+action, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// badRequest writes a 400 for input that could not be bound.
func badRequest(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
