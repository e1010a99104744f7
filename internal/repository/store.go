package repository

import (
	"football-voting-backend/internal/database/models"
)

// Store is the persistence boundary of the voting service. Load methods
// return full collections (entity loads also return the next free id,
// max(id)+1 or 1 for an empty table); save methods replace whole tables
// inside one transaction. The service never touches the database engine
// directly, so the full-replace strategy can later be swapped for
// incremental upserts without changing ledger logic.
type Store interface {
	LoadTeams() ([]models.Team, int, error)
	LoadPlayers() ([]models.Player, int, error)
	LoadMatches() ([]models.Match, int, error)
	LoadVotes() (map[int]map[int]int, error)
	LoadMatchStats() (map[int]models.MatchStats, error)

	// SaveAll rewrites teams, players, matches and votes as one
	// all-or-nothing transaction.
	SaveAll(teams []models.Team, players []models.Player, matches []models.Match, votes map[int]map[int]int) error

	// SaveMatchStats rewrites the match_stats table in its own transaction.
	SaveMatchStats(stats map[int]models.MatchStats) error
}
