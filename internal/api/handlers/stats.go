package handlers

import (
	"net/http"
	"strconv"

	"football-voting-backend/internal/database/models"
	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles HTTP requests for ledger totals and match statistics
type StatsHandler struct {
	voting *service.VotingService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(voting *service.VotingService) *StatsHandler {
	return &StatsHandler{voting: voting}
}

// GetStats handles GET /api/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.voting.CollectStats())
}

// GetMatchStats handles GET /api/match-stats: the aggregated record for
// every match, active first, most voted first within each group.
func (h *StatsHandler) GetMatchStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matches": h.voting.CollectMatchStats()})
}

// GetMatchStatsByID handles GET /api/match-stats/:matchId, returning just
// the editable fields the stats form works with.
func (h *StatsHandler) GetMatchStatsByID(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("matchId"))
	if err != nil {
		respondError(c, "match id must be a number")
		return
	}

	stats := h.voting.GetMatchStats(matchID)
	c.JSON(http.StatusOK, editableStats(stats))
}

// UpdateMatchStats handles POST /api/matches/update-stats. Fields absent
// from the form keep their current values; identity fields are re-derived
// by the service regardless of what the form carries.
func (h *StatsHandler) UpdateMatchStats(c *gin.Context) {
	matchID, ok := formInt(c, "match_id")
	if !ok {
		return
	}

	stats := h.voting.GetMatchStats(matchID)
	fields := map[string]*int{
		"team1_possession":      &stats.Team1Possession,
		"team2_possession":      &stats.Team2Possession,
		"team1_shots":           &stats.Team1Shots,
		"team2_shots":           &stats.Team2Shots,
		"team1_shots_on_target": &stats.Team1ShotsOnTarget,
		"team2_shots_on_target": &stats.Team2ShotsOnTarget,
		"team1_corners":         &stats.Team1Corners,
		"team2_corners":         &stats.Team2Corners,
		"team1_fouls":           &stats.Team1Fouls,
		"team2_fouls":           &stats.Team2Fouls,
		"team1_yellow_cards":    &stats.Team1YellowCards,
		"team2_yellow_cards":    &stats.Team2YellowCards,
		"team1_red_cards":       &stats.Team1RedCards,
		"team2_red_cards":       &stats.Team2RedCards,
		"team1_goals":           &stats.Team1Goals,
		"team2_goals":           &stats.Team2Goals,
	}
	for field, target := range fields {
		raw := c.PostForm(field)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, field+" must be a number")
			return
		}
		*target = value
	}

	if err := h.voting.UpdateMatchStats(matchID, stats); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "stats updated"})
}

// editableStats projects a stats record onto its operator-editable fields
func editableStats(stats models.MatchStats) gin.H {
	return gin.H{
		"match_id":              stats.MatchID,
		"team1_possession":      stats.Team1Possession,
		"team2_possession":      stats.Team2Possession,
		"team1_shots":           stats.Team1Shots,
		"team2_shots":           stats.Team2Shots,
		"team1_shots_on_target": stats.Team1ShotsOnTarget,
		"team2_shots_on_target": stats.Team2ShotsOnTarget,
		"team1_corners":         stats.Team1Corners,
		"team2_corners":         stats.Team2Corners,
		"team1_fouls":           stats.Team1Fouls,
		"team2_fouls":           stats.Team2Fouls,
		"team1_yellow_cards":    stats.Team1YellowCards,
		"team2_yellow_cards":    stats.Team2YellowCards,
		"team1_red_cards":       stats.Team1RedCards,
		"team2_red_cards":       stats.Team2RedCards,
		"team1_goals":           stats.Team1Goals,
		"team2_goals":           stats.Team2Goals,
	}
}
