package handlers

import (
	"net/http"

	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	voting *service.VotingService
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(voting *service.VotingService) *PlayerHandler {
	return &PlayerHandler{voting: voting}
}

// ListPlayers handles GET /api/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": h.voting.ListPlayers()})
}

// AddPlayer handles POST /api/players/add. Registering the same
// (name, team) pair twice returns the existing player's id.
func (h *PlayerHandler) AddPlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBind(&req); err != nil || req.Name == "" || req.Position == "" {
		respondError(c, "player name and position are required")
		return
	}

	player, err := h.voting.AddPlayer(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"player_id": player.ID})
}
