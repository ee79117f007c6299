package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root returns the service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Smart Garden Planner API",
		"status":  "running",
	})
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
