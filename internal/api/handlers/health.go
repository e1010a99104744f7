package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Root handles GET / and GET /api
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Voting System API",
		"version": "2.0",
		"status":  "ok",
	})
}
