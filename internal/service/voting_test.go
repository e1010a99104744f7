package service_test

import (
	"testing"

	"football-voting-backend/internal/database/models"
	apperrors "football-voting-backend/internal/errors"
	"football-voting-backend/internal/service"
	"football-voting-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// VotingServiceTestSuite runs the ledger against a real temp-file sqlite
// store so every mutation exercises the full write-through path.
type VotingServiceTestSuite struct {
	suite.Suite
	voting *service.VotingService
}

func (s *VotingServiceTestSuite) SetupTest() {
	s.voting = testutils.NewTestService(s.T())
}

func (s *VotingServiceTestSuite) TestAddTeamAssignsSequentialIDs() {
	first, err := s.voting.AddTeam(&service.CreateTeamRequest{Name: "Alpha"})
	s.Require().NoError(err)
	s.Equal(1, first.ID)

	// No duplicate check: same name gets a fresh id.
	second, err := s.voting.AddTeam(&service.CreateTeamRequest{Name: "Alpha"})
	s.Require().NoError(err)
	s.Equal(2, second.ID)
	s.Len(s.voting.ListTeams(), 2)
}

func (s *VotingServiceTestSuite) TestAddTeamRequiresName() {
	_, err := s.voting.AddTeam(&service.CreateTeamRequest{})
	s.True(apperrors.IsValidation(err))
	s.Empty(s.voting.ListTeams())
}

func (s *VotingServiceTestSuite) TestAddPlayerIdempotentOnNameAndTeam() {
	first, err := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})
	s.Require().NoError(err)

	again, err := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "GK", TeamID: 1})
	s.Require().NoError(err)
	s.Equal(first.ID, again.ID)
	s.Equal("FW", again.Position, "existing player returned unchanged")
	s.Len(s.voting.ListPlayers(), 1)

	// Same name on another team is a different player.
	other, err := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 2})
	s.Require().NoError(err)
	s.NotEqual(first.ID, other.ID)
}

func (s *VotingServiceTestSuite) TestAddMatchSeedsDefaultStats() {
	match, err := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	s.Require().NoError(err)
	s.Equal(1, match.ID)
	s.True(match.IsActive)
	s.NotEmpty(match.Date)
	s.Equal(models.DefaultFormation, match.Team1Formation)
	s.Equal(models.DefaultFormation, match.Team2Formation)

	stats := s.voting.GetMatchStats(match.ID)
	s.Equal(match.ID, stats.MatchID)
	s.Equal(50, stats.Team1Possession)
	s.Equal(50, stats.Team2Possession)
	s.Zero(stats.TotalVotes)
}

func (s *VotingServiceTestSuite) TestRecordVoteIncrementsByExactlyOne() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	player, _ := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})

	before := s.voting.CollectStats().TotalVotes
	s.Require().NoError(s.voting.RecordVote(match.ID, player.ID))

	s.Equal(map[int]int{player.ID: 1}, s.voting.VotesForMatch(match.ID))
	s.Equal(1, s.voting.ListPlayers()[0].Votes)
	s.Equal(before+1, s.voting.CollectStats().TotalVotes)
}

func (s *VotingServiceTestSuite) TestRecordVoteUnknownMatch() {
	player, _ := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})

	err := s.voting.RecordVote(99, player.ID)
	s.True(apperrors.IsNotFound(err))
	s.Zero(s.voting.ListPlayers()[0].Votes)
}

func (s *VotingServiceTestSuite) TestRecordVoteUnknownPlayer() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})

	err := s.voting.RecordVote(match.ID, 42)
	s.True(apperrors.IsNotFound(err))
	s.Empty(s.voting.VotesForMatch(match.ID))
}

func (s *VotingServiceTestSuite) TestClosedMatchRejectsVotes() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	player, _ := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})
	s.Require().NoError(s.voting.RecordVote(match.ID, player.ID))

	s.Require().NoError(s.voting.CloseMatch(match.ID))
	err := s.voting.RecordVote(match.ID, player.ID)
	s.True(apperrors.IsNotFound(err))
	s.Equal(map[int]int{player.ID: 1}, s.voting.VotesForMatch(match.ID), "failed vote changes nothing")

	// Reopening makes the match votable again.
	s.Require().NoError(s.voting.SetMatchActive(match.ID, true))
	s.NoError(s.voting.RecordVote(match.ID, player.ID))
}

func (s *VotingServiceTestSuite) TestSetMatchActiveUnknownMatch() {
	err := s.voting.SetMatchActive(7, false)
	s.True(apperrors.IsNotFound(err))
}

func (s *VotingServiceTestSuite) TestUpdateMatchStatsRejectsBadPossession() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})

	bad := s.voting.GetMatchStats(match.ID)
	bad.Team1Possession = 60
	bad.Team2Possession = 41
	err := s.voting.UpdateMatchStats(match.ID, bad)
	s.True(apperrors.IsValidation(err))

	// Prior stats untouched.
	s.Equal(50, s.voting.GetMatchStats(match.ID).Team1Possession)
}

func (s *VotingServiceTestSuite) TestUpdateMatchStatsRederivesIdentity() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})

	update := s.voting.GetMatchStats(match.ID)
	update.Team1Possession = 60
	update.Team2Possession = 40
	update.Team1Goals = 2
	// Caller-supplied identity fields must be ignored.
	update.Team1 = "Forged"
	update.Date = "1999-01-01 00:00:00"
	update.IsActive = false
	s.Require().NoError(s.voting.UpdateMatchStats(match.ID, update))

	stats := s.voting.GetMatchStats(match.ID)
	s.Equal(60, stats.Team1Possession)
	s.Equal(2, stats.Team1Goals)
	s.Equal("Alpha", stats.Team1)
	s.Equal(match.Date, stats.Date)
	s.True(stats.IsActive)
}

func (s *VotingServiceTestSuite) TestUpdateMatchStatsUnknownMatch() {
	err := s.voting.UpdateMatchStats(3, models.MatchStats{Team1Possession: 50, Team2Possession: 50})
	s.True(apperrors.IsNotFound(err))
}

func (s *VotingServiceTestSuite) TestDeleteMatchRemovesVotesAndStats() {
	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	player, _ := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})
	s.Require().NoError(s.voting.RecordVote(match.ID, player.ID))

	s.Require().NoError(s.voting.DeleteMatch(match.ID))
	s.Empty(s.voting.ListMatches())
	s.Empty(s.voting.VotesForMatch(match.ID))
	s.Zero(s.voting.GetMatchStats(match.ID).MatchID)
	s.Zero(s.voting.CollectStats().TotalVotes)

	s.True(apperrors.IsNotFound(s.voting.DeleteMatch(match.ID)))
}

func (s *VotingServiceTestSuite) TestListsReturnCopies() {
	s.voting.AddTeam(&service.CreateTeamRequest{Name: "Alpha"})

	teams := s.voting.ListTeams()
	teams[0].Name = "mutated"
	s.Equal("Alpha", s.voting.ListTeams()[0].Name)

	match, _ := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	player, _ := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: 1})
	s.voting.RecordVote(match.ID, player.ID)
	tally := s.voting.VotesForMatch(match.ID)
	tally[player.ID] = 100
	s.Equal(1, s.voting.VotesForMatch(match.ID)[player.ID])
}

// TestFullScenario is the end-to-end ledger walk: team, match, player,
// three votes, close, stats update.
func (s *VotingServiceTestSuite) TestFullScenario() {
	team, err := s.voting.AddTeam(&service.CreateTeamRequest{Name: "Alpha"})
	s.Require().NoError(err)
	s.Equal(1, team.ID)

	match, err := s.voting.AddMatch(&service.CreateMatchRequest{Team1: "Alpha", Team2: "Beta"})
	s.Require().NoError(err)
	s.Equal(1, match.ID)
	s.True(match.IsActive)
	s.NotEmpty(match.Date)

	player, err := s.voting.AddPlayer(&service.CreatePlayerRequest{Name: "A1", Position: "FW", TeamID: team.ID})
	s.Require().NoError(err)
	s.Equal(1, player.ID)

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.voting.RecordVote(match.ID, player.ID))
	}
	s.Equal(3, s.voting.ListPlayers()[0].Votes)
	s.Equal(map[int]int{1: 3}, s.voting.VotesForMatch(match.ID))

	s.Require().NoError(s.voting.CloseMatch(match.ID))
	s.True(apperrors.IsNotFound(s.voting.RecordVote(match.ID, player.ID)))

	bad := s.voting.GetMatchStats(match.ID)
	bad.Team1Possession, bad.Team2Possession = 60, 41
	s.True(apperrors.IsValidation(s.voting.UpdateMatchStats(match.ID, bad)))

	good := s.voting.GetMatchStats(match.ID)
	good.Team1Possession, good.Team2Possession = 60, 40
	s.NoError(s.voting.UpdateMatchStats(match.ID, good))
}

func TestVotingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VotingServiceTestSuite))
}
