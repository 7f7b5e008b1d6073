package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome reports that the API is up.
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Net worth tracker API v1"})
}

// getHealth is the liveness probe.
func getHealth(ctx *gin.Context) {
	ctx.String(http.StatusOK, "OK")
}
