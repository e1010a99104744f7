package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the composite read-side payloads the front-end
// pages consume. Pure composition over the voting service; no new logic.
type DashboardHandler struct {
	voting *service.VotingService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(voting *service.VotingService) *DashboardHandler {
	return &DashboardHandler{voting: voting}
}

// Dashboard handles GET /api/dashboard. Bundles teams, players, matches,
// ledger totals and the votes of the selected match (first match when no
// match_id query parameter is given).
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	matchID := 0
	if raw := c.Query("match_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, "match_id must be a number")
			return
		}
		matchID = id
	}

	matches := h.voting.ListMatches()
	if matchID == 0 && len(matches) > 0 {
		matchID = matches[0].ID
	}

	votes := []voteEntry{}
	if matchID > 0 {
		votes = voteEntries(h.voting.VotesForMatch(matchID))
	}

	c.JSON(http.StatusOK, gin.H{
		"teams":   h.voting.ListTeams(),
		"players": h.voting.ListPlayers(),
		"matches": matches,
		"stats":   h.voting.CollectStats(),
		"votes":   votes,
	})
}

// MatchesPage handles GET /api/matches-page: matches plus teams
func (h *DashboardHandler) MatchesPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"matches": h.voting.ListMatches(),
		"teams":   h.voting.ListTeams(),
	})
}

// PlayersPage handles GET /api/players-page: players plus teams
func (h *DashboardHandler) PlayersPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"players": h.voting.ListPlayers(),
		"teams":   h.voting.ListTeams(),
	})
}

// topPlayerEntry is one row of the stats-page career ranking
type topPlayerEntry struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Votes    int    `json:"votes"`
}

// StatsPage handles GET /api/stats-page: aggregated match stats plus the
// ten players with the most career votes.
func (h *DashboardHandler) StatsPage(c *gin.Context) {
	players := h.voting.ListPlayers()

	ranking := make([]topPlayerEntry, 0, len(players))
	for _, p := range players {
		ranking = append(ranking, topPlayerEntry{PlayerID: p.ID, Name: p.Name, Votes: p.Votes})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Votes > ranking[j].Votes })
	if len(ranking) > 10 {
		ranking = ranking[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"matches":     h.voting.CollectMatchStats(),
		"top_players": ranking,
	})
}
