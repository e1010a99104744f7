package repository

import (
	"sort"

	"football-voting-backend/internal/database/models"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a GORM sqlite connection
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new store backed by the given database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// LoadTeams retrieves all teams ordered by id
func (s *GormStore) LoadTeams() ([]models.Team, int, error) {
	var teams []models.Team
	if err := s.db.Order("id").Find(&teams).Error; err != nil {
		return nil, 0, err
	}
	return teams, nextID(len(teams), func(i int) int { return teams[i].ID }), nil
}

// LoadPlayers retrieves all players ordered by id
func (s *GormStore) LoadPlayers() ([]models.Player, int, error) {
	var players []models.Player
	if err := s.db.Order("id").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, nextID(len(players), func(i int) int { return players[i].ID }), nil
}

// LoadMatches retrieves all matches ordered by id
func (s *GormStore) LoadMatches() ([]models.Match, int, error) {
	var matches []models.Match
	if err := s.db.Order("id").Find(&matches).Error; err != nil {
		return nil, 0, err
	}
	return matches, nextID(len(matches), func(i int) int { return matches[i].ID }), nil
}

// LoadVotes retrieves the full tally as matchID -> playerID -> count
func (s *GormStore) LoadVotes() (map[int]map[int]int, error) {
	var rows []models.Vote
	if err := s.db.Order("match_id, player_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	votes := make(map[int]map[int]int)
	for _, row := range rows {
		if votes[row.MatchID] == nil {
			votes[row.MatchID] = make(map[int]int)
		}
		votes[row.MatchID][row.PlayerID] = row.Votes
	}
	return votes, nil
}

// LoadMatchStats retrieves all persisted stats records keyed by match id
func (s *GormStore) LoadMatchStats() (map[int]models.MatchStats, error) {
	var rows []models.MatchStats
	if err := s.db.Order("match_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	stats := make(map[int]models.MatchStats, len(rows))
	for _, row := range rows {
		stats[row.MatchID] = row
	}
	return stats, nil
}

// SaveAll replaces the teams, players, matches and votes tables with the
// given in-memory state. Delete-then-reinsert inside one transaction keeps
// the on-disk state trivially consistent with memory at the cost of
// O(total rows) writes per mutation.
func (s *GormStore) SaveAll(teams []models.Team, players []models.Player, matches []models.Match, votes map[int]map[int]int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"teams", "players", "matches", "votes"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return err
			}
		}
		// Select("*") keeps zero-valued fields with column defaults in the
		// insert (a closed match's is_active=false, a 0/100 possession
		// split); GORM would otherwise drop them in favor of the default.
		if len(teams) > 0 {
			if err := tx.Select("*").Create(&teams).Error; err != nil {
				return err
			}
		}
		if len(players) > 0 {
			if err := tx.Select("*").Create(&players).Error; err != nil {
				return err
			}
		}
		if len(matches) > 0 {
			if err := tx.Select("*").Create(&matches).Error; err != nil {
				return err
			}
		}
		rows := flattenVotes(votes)
		if len(rows) > 0 {
			if err := tx.Select("*").Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveMatchStats replaces the match_stats table with the given records
func (s *GormStore) SaveMatchStats(stats map[int]models.MatchStats) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM match_stats").Error; err != nil {
			return err
		}
		if len(stats) == 0 {
			return nil
		}
		rows := make([]models.MatchStats, 0, len(stats))
		ids := make([]int, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			rows = append(rows, stats[id])
		}
		return tx.Select("*").Create(&rows).Error
	})
}

// flattenVotes turns the nested tally into rows ordered by (match, player)
func flattenVotes(votes map[int]map[int]int) []models.Vote {
	var rows []models.Vote
	matchIDs := make([]int, 0, len(votes))
	for id := range votes {
		matchIDs = append(matchIDs, id)
	}
	sort.Ints(matchIDs)
	for _, matchID := range matchIDs {
		tally := votes[matchID]
		playerIDs := make([]int, 0, len(tally))
		for id := range tally {
			playerIDs = append(playerIDs, id)
		}
		sort.Ints(playerIDs)
		for _, playerID := range playerIDs {
			rows = append(rows, models.Vote{MatchID: matchID, PlayerID: playerID, Votes: tally[playerID]})
		}
	}
	return rows
}

func nextID(n int, id func(int) int) int {
	maxID := 0
	for i := 0; i < n; i++ {
		if id(i) > maxID {
			maxID = id(i)
		}
	}
	return maxID + 1
}
