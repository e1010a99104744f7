package handlers

import (
	"net/http"
	"strconv"

	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MatchHandler handles HTTP requests for match lifecycle operations
type MatchHandler struct {
	voting *service.VotingService
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(voting *service.VotingService) *MatchHandler {
	return &MatchHandler{voting: voting}
}

// ListMatches handles GET /api/matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matches": h.voting.ListMatches()})
}

// AddMatch handles POST /api/matches/add. Formations default to 4-3-3 when
// omitted.
func (h *MatchHandler) AddMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBind(&req); err != nil || req.Team1 == "" || req.Team2 == "" {
		respondError(c, "both team names are required")
		return
	}

	match, err := h.voting.AddMatch(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"match_id": match.ID})
}

// CloseMatch handles POST /api/matches/close
func (h *MatchHandler) CloseMatch(c *gin.Context) {
	matchID, ok := formInt(c, "match_id")
	if !ok {
		return
	}

	if err := h.voting.CloseMatch(matchID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "match closed"})
}

// SetMatchActive handles POST /api/matches/set-active
func (h *MatchHandler) SetMatchActive(c *gin.Context) {
	matchID, ok := formInt(c, "match_id")
	if !ok {
		return
	}
	active, err := strconv.ParseBool(c.DefaultPostForm("is_active", "true"))
	if err != nil {
		respondError(c, "is_active must be a boolean")
		return
	}

	if err := h.voting.SetMatchActive(matchID, active); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "match updated"})
}

// DeleteMatch handles POST /api/matches/delete. The match, its tallies and
// its stats record go together.
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	matchID, ok := formInt(c, "match_id")
	if !ok {
		return
	}

	if err := h.voting.DeleteMatch(matchID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "match deleted"})
}

// formInt reads a required integer form field, emitting the error envelope
// itself when the field is missing or malformed.
func formInt(c *gin.Context, field string) (int, bool) {
	raw := c.PostForm(field)
	if raw == "" {
		respondError(c, field+" is required")
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, field+" must be a number")
		return 0, false
	}
	return value, true
}
