package service

import (
	"sync"
	"time"

	"football-voting-backend/internal/database/models"
	apperrors "football-voting-backend/internal/errors"
	"football-voting-backend/internal/logger"
	"football-voting-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// VotingService is the authoritative in-memory ledger of teams, players,
// matches and votes. One mutex serializes every operation, reads included;
// mutations persist synchronously through the store before returning, so a
// successful call is durable. Collections are never handed out by
// reference: all reads return copies.
type VotingService struct {
	store     repository.Store
	validator *validator.Validate
	log       *logger.Logger

	mu         sync.Mutex
	teams      []models.Team
	players    []models.Player
	matches    []models.Match
	votes      map[int]map[int]int // matchID -> playerID -> count
	matchStats map[int]models.MatchStats

	nextTeamID   int
	nextPlayerID int
	nextMatchID  int
}

// Totals summarizes the whole ledger
type Totals struct {
	TotalPlayers int `json:"total_players"`
	TotalMatches int `json:"total_matches"`
	TotalVotes   int `json:"total_votes"`
}

// CreateTeamRequest represents the request to register a team
type CreateTeamRequest struct {
	Name string `form:"name" validate:"required"`
}

// CreatePlayerRequest represents the request to register a player
type CreatePlayerRequest struct {
	Name     string `form:"name" validate:"required"`
	Position string `form:"position" validate:"required"`
	TeamID   int    `form:"team_id"`
}

// CreateMatchRequest represents the request to schedule a match
type CreateMatchRequest struct {
	Team1          string `form:"team1" validate:"required"`
	Team2          string `form:"team2" validate:"required"`
	Team1Formation string `form:"team1_formation"`
	Team2Formation string `form:"team2_formation"`
}

// NewVotingService loads the full ledger state from the store. A load
// failure aborts startup: serving from a half-loaded ledger would violate
// every consistency guarantee the service makes.
func NewVotingService(store repository.Store, v *validator.Validate) (*VotingService, error) {
	s := &VotingService{
		store:     store,
		validator: v,
		log:       logger.New().WithField("component", "voting_service"),
	}

	var err error
	if s.teams, s.nextTeamID, err = store.LoadTeams(); err != nil {
		return nil, err
	}
	if s.players, s.nextPlayerID, err = store.LoadPlayers(); err != nil {
		return nil, err
	}
	if s.matches, s.nextMatchID, err = store.LoadMatches(); err != nil {
		return nil, err
	}
	if s.votes, err = store.LoadVotes(); err != nil {
		return nil, err
	}
	if s.matchStats, err = store.LoadMatchStats(); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"teams":   len(s.teams),
		"players": len(s.players),
		"matches": len(s.matches),
	}).Info("ledger state loaded")

	return s, nil
}

// AddTeam registers a new team. No duplicate check: two teams may share a
// name and both get distinct ids.
func (s *VotingService) AddTeam(req *CreateTeamRequest) (models.Team, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Team{}, apperrors.NewValidationError("name", "team name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	team := models.Team{ID: s.nextTeamID, Name: req.Name}
	s.nextTeamID++
	s.teams = append(s.teams, team)

	if err := s.persistLocked(); err != nil {
		return team, err
	}
	return team, nil
}

// AddPlayer registers a player. Idempotent on (name, team): a second call
// with the same natural key returns the existing player unchanged and does
// not touch storage.
func (s *VotingService) AddPlayer(req *CreatePlayerRequest) (models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Player{}, apperrors.NewValidationError("player", "player name and position are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if p.Name == req.Name && p.TeamID == req.TeamID {
			return p, nil
		}
	}

	player := models.Player{
		ID:       s.nextPlayerID,
		Name:     req.Name,
		Position: req.Position,
		TeamID:   req.TeamID,
	}
	s.nextPlayerID++
	s.players = append(s.players, player)

	if err := s.persistLocked(); err != nil {
		return player, err
	}
	return player, nil
}

// AddMatch schedules a match between two (free-text) team names and seeds
// its default stats record in the same critical section.
func (s *VotingService) AddMatch(req *CreateMatchRequest) (models.Match, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Match{}, apperrors.NewValidationError("match", "both team names are required")
	}

	f1 := req.Team1Formation
	if f1 == "" {
		f1 = models.DefaultFormation
	}
	f2 := req.Team2Formation
	if f2 == "" {
		f2 = models.DefaultFormation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	match := models.Match{
		ID:             s.nextMatchID,
		Team1:          req.Team1,
		Team2:          req.Team2,
		Date:           time.Now().Format("2006-01-02 15:04:05"),
		IsActive:       true,
		Team1Formation: f1,
		Team2Formation: f2,
	}
	s.nextMatchID++
	s.matches = append(s.matches, match)
	s.matchStats[match.ID] = models.DefaultMatchStats(match)

	if err := s.persistLocked(); err != nil {
		return match, err
	}
	return match, nil
}

// RecordVote counts one vote for a player in an active match. Both the
// player's career counter and the per-match tally move by exactly 1; on any
// error nothing changes.
func (s *VotingService) RecordVote(matchID, playerID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.matchIndex(matchID); i < 0 || !s.matches[i].IsActive {
		return apperrors.ErrMatchNotActive
	}

	playerIdx := -1
	for i := range s.players {
		if s.players[i].ID == playerID {
			playerIdx = i
			break
		}
	}
	if playerIdx < 0 {
		return apperrors.ErrPlayerNotFound
	}

	s.players[playerIdx].Votes++
	if s.votes[matchID] == nil {
		s.votes[matchID] = make(map[int]int)
	}
	s.votes[matchID][playerID]++

	return s.persistLocked()
}

// CloseMatch marks a match inactive
func (s *VotingService) CloseMatch(matchID int) error {
	return s.SetMatchActive(matchID, false)
}

// SetMatchActive toggles a match's active flag and keeps the persisted
// stats record in step with it.
func (s *VotingService) SetMatchActive(matchID int, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.matchIndex(matchID)
	if i < 0 {
		return apperrors.ErrMatchNotFound
	}
	s.matches[i].IsActive = active

	if stats, ok := s.matchStats[matchID]; ok {
		stats.IsActive = active
		s.matchStats[matchID] = stats
	}

	return s.persistLocked()
}

// UpdateMatchStats overwrites the editable statistics of a match. The
// possession split must sum to 100 or the update is rejected with the prior
// record untouched. Identity fields (match id, team names, date, active
// flag) are re-derived from the match itself; caller-supplied values for
// them are ignored.
func (s *VotingService) UpdateMatchStats(matchID int, stats models.MatchStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.matchIndex(matchID)
	if i < 0 {
		return apperrors.ErrMatchNotFound
	}
	if stats.Team1Possession+stats.Team2Possession != 100 {
		return apperrors.ErrPossessionSum
	}

	match := s.matches[i]
	stats.MatchID = match.ID
	stats.Team1 = match.Team1
	stats.Team2 = match.Team2
	stats.Date = match.Date
	stats.IsActive = match.IsActive
	stats.TopPlayers = nil
	s.matchStats[matchID] = stats

	return s.persistLocked()
}

// DeleteMatch removes a match together with its tallies and stats record
// as one logical unit.
func (s *VotingService) DeleteMatch(matchID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.matchIndex(matchID)
	if i < 0 {
		return apperrors.ErrMatchNotFound
	}
	s.matches = append(s.matches[:i], s.matches[i+1:]...)
	delete(s.votes, matchID)
	delete(s.matchStats, matchID)

	return s.persistLocked()
}

// ListTeams returns a copy of all teams in creation order
func (s *VotingService) ListTeams() []models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// ListPlayers returns a copy of all players in creation order
func (s *VotingService) ListPlayers() []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Player, len(s.players))
	copy(out, s.players)
	return out
}

// ListMatches returns a copy of all matches in creation order
func (s *VotingService) ListMatches() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// VotesForMatch returns a copy of one match's tally (playerID -> votes).
// Unknown matches yield an empty map, not an error.
func (s *VotingService) VotesForMatch(matchID int) map[int]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]int, len(s.votes[matchID]))
	for playerID, count := range s.votes[matchID] {
		out[playerID] = count
	}
	return out
}

// GetMatchStats returns the stats record for a match: the persisted record
// when one exists, synthesized defaults when the match exists without one,
// and a zero record otherwise.
func (s *VotingService) GetMatchStats(matchID int) models.MatchStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stats, ok := s.matchStats[matchID]; ok {
		stats.TopPlayers = copyTally(stats.TopPlayers)
		return stats
	}
	if i := s.matchIndex(matchID); i >= 0 {
		return models.DefaultMatchStats(s.matches[i])
	}
	return models.MatchStats{}
}

// CollectStats summarizes the ledger: entity counts plus the grand total of
// votes across all matches.
func (s *VotingService) CollectStats() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := Totals{
		TotalPlayers: len(s.players),
		TotalMatches: len(s.matches),
	}
	for _, tally := range s.votes {
		for _, count := range tally {
			totals.TotalVotes += count
		}
	}
	return totals
}

// persistLocked writes the whole ledger through the store. Called with the
// mutex held, so persistence latency is on every mutation's critical path.
// A failed save leaves memory authoritative; the next successful save
// rewrites everything, so no incremental state is lost.
func (s *VotingService) persistLocked() error {
	if err := s.store.SaveAll(s.teams, s.players, s.matches, s.votes); err != nil {
		s.log.WithField("error", err).Error("failed to persist ledger state")
		return apperrors.NewStorageError("save ledger", err)
	}
	if err := s.store.SaveMatchStats(s.matchStats); err != nil {
		s.log.WithField("error", err).Error("failed to persist match stats")
		return apperrors.NewStorageError("save match stats", err)
	}
	return nil
}

// matchIndex finds a match by id, -1 when absent. Caller holds the lock.
func (s *VotingService) matchIndex(matchID int) int {
	for i := range s.matches {
		if s.matches[i].ID == matchID {
			return i
		}
	}
	return -1
}

func copyTally(tally map[int]int) map[int]int {
	if tally == nil {
		return nil
	}
	out := make(map[int]int, len(tally))
	for k, v := range tally {
		out[k] = v
	}
	return out
}
