package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the owner's ID in the Gin context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// OwnerMiddleware scopes every request to the single configured owner.
func OwnerMiddleware(ownerUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(userIDKey), ownerUserID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDKey, ownerUserID))
		c.Next()
	}
}

// GetUserIDFromContext retrieves the owner user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if userID, ok := c.Request.Context().Value(userIDKey).(string); ok {
			return userID, true
		}
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}
