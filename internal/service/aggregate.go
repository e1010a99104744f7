package service

import (
	"sort"

	"football-voting-backend/internal/database/models"
)

// CollectMatchStats computes a fully-populated stats record for every match
// by joining the match list, the vote tallies and the player/team
// collections. Editable fields come from the persisted record (or defaults
// when none was saved); every vote-derived field is recomputed from scratch
// so it can never drift from the raw tallies.
func (s *VotingService) CollectMatchStats() []models.MatchStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Lookup maps are built once per call, not per match.
	playersByID := make(map[int]models.Player, len(s.players))
	for _, p := range s.players {
		playersByID[p.ID] = p
	}
	teamIDByName := make(map[string]int, len(s.teams))
	for _, t := range s.teams {
		teamIDByName[t.Name] = t.ID
	}

	result := make([]models.MatchStats, 0, len(s.matches))
	for _, match := range s.matches {
		stats, ok := s.matchStats[match.ID]
		if ok {
			if stats.Team1 == "" || stats.Team2 == "" {
				stats.Team1 = match.Team1
				stats.Team2 = match.Team2
			}
			if stats.Date == "" {
				stats.Date = match.Date
			}
			stats.IsActive = match.IsActive
		} else {
			stats = models.DefaultMatchStats(match)
		}

		// Derived fields are recomputed, never carried over.
		stats.TotalVotes = 0
		stats.Team1Votes = 0
		stats.Team2Votes = 0
		stats.UniqueVoters = 0
		stats.MostVotedPlayer = ""
		stats.MostVotedPlayerVotes = 0
		stats.TopPlayers = nil

		if tally := s.votes[stats.MatchID]; len(tally) > 0 {
			s.accumulateVotes(&stats, tally, playersByID, teamIDByName)
		}

		result = append(result, stats)
	}

	// Active matches first, then by votes. Stable so equal keys keep
	// ledger insertion order.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsActive != result[j].IsActive {
			return result[i].IsActive
		}
		return result[i].TotalVotes > result[j].TotalVotes
	})

	return result
}

// accumulateVotes folds one match's tally into its stats record. Votes for
// players on neither resolved team still count toward the total but are not
// attributed to either side. The leader only changes on a strict
// improvement, so with the ascending player-id walk the earliest maximum
// wins ties.
func (s *VotingService) accumulateVotes(stats *models.MatchStats, tally map[int]int, playersByID map[int]models.Player, teamIDByName map[string]int) {
	team1ID := teamIDByName[stats.Team1]
	team2ID := teamIDByName[stats.Team2]

	playerIDs := make([]int, 0, len(tally))
	for id := range tally {
		playerIDs = append(playerIDs, id)
	}
	sort.Ints(playerIDs)

	maxVotes := 0
	leaderID := 0
	stats.TopPlayers = make(map[int]int, len(tally))
	for _, playerID := range playerIDs {
		count := tally[playerID]
		stats.TotalVotes += count
		stats.TopPlayers[playerID] = count

		if player, ok := playersByID[playerID]; ok {
			switch {
			case team1ID != 0 && player.TeamID == team1ID:
				stats.Team1Votes += count
			case team2ID != 0 && player.TeamID == team2ID:
				stats.Team2Votes += count
			}
		}

		if count > maxVotes {
			maxVotes = count
			leaderID = playerID
		}
	}

	// Voters who received at least one vote, not people casting them.
	stats.UniqueVoters = len(tally)

	if leaderID > 0 {
		if player, ok := playersByID[leaderID]; ok {
			stats.MostVotedPlayer = player.Name
			stats.MostVotedPlayerVotes = maxVotes
		}
	}
}
