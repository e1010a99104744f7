package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"football-voting-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VoteHandler handles HTTP requests for vote operations
type VoteHandler struct {
	voting *service.VotingService
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(voting *service.VotingService) *VoteHandler {
	return &VoteHandler{voting: voting}
}

// voteEntry is one element of a votes listing
type voteEntry struct {
	PlayerID int `json:"player_id"`
	Votes    int `json:"votes"`
}

// Vote handles POST /api/vote
func (h *VoteHandler) Vote(c *gin.Context) {
	matchID, ok := formInt(c, "match_id")
	if !ok {
		return
	}
	playerID, ok := formInt(c, "player_id")
	if !ok {
		return
	}

	// The role is an audit tag only; nothing checks it.
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"match_id":   matchID,
		"player_id":  playerID,
		"role":       c.DefaultPostForm("role", "fan"),
	}).Info("vote received")

	if err := h.voting.RecordVote(matchID, playerID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, gin.H{"message": "vote counted"})
}

// GetVotes handles GET /api/votes/:matchId
func (h *VoteHandler) GetVotes(c *gin.Context) {
	matchID, err := strconv.Atoi(c.Param("matchId"))
	if err != nil {
		respondError(c, "match id must be a number")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"match_id": matchID,
		"votes":    voteEntries(h.voting.VotesForMatch(matchID)),
	})
}

// voteEntries flattens a tally into a player-id-ordered list
func voteEntries(tally map[int]int) []voteEntry {
	entries := make([]voteEntry, 0, len(tally))
	for playerID, count := range tally {
		entries = append(entries, voteEntry{PlayerID: playerID, Votes: count})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].PlayerID < entries[j].PlayerID })
	return entries
}
