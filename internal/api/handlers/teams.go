package handlers

import (
	"net/http"

	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	voting *service.VotingService
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(voting *service.VotingService) *TeamHandler {
	return &TeamHandler{voting: voting}
}

// ListTeams handles GET /api/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.voting.ListTeams()})
}

// AddTeam handles POST /api/teams/add
func (h *TeamHandler) AddTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBind(&req); err != nil || req.Name == "" {
		respondError(c, "team name is required")
		return
	}

	team, err := h.voting.AddTeam(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"team_id": team.ID})
}
