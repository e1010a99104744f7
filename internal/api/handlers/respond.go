package handlers

import (
	"net/http"

	apperrors "football-voting-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Application-level failures travel inside a 200 envelope with
// status/message fields; transport-level codes are reserved for the
// recovery middleware. This is the wire contract the front end consumes.

func respondSuccess(c *gin.Context, extra gin.H) {
	payload := gin.H{"status": "success"}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"status": "error", "message": message})
}

// respondServiceError maps a service error onto the envelope
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err), apperrors.IsValidation(err):
		respondError(c, err.Error())
	case apperrors.IsStorage(err):
		respondError(c, "failed to persist changes: "+err.Error())
	default:
		respondError(c, err.Error())
	}
}
