package models

// MatchStats holds one match's statistics record: editable fields set by
// operators (possession, shots, cards, goals) together with vote-derived
// fields computed by the aggregation engine. MatchID, the team names, the
// date and IsActive mirror the owning Match and are re-derived on every
// stats update, never trusted from callers.
type MatchStats struct {
	MatchID  int    `json:"match_id" gorm:"column:match_id;primaryKey"`
	Team1    string `json:"team1" gorm:"not null"`
	Team2    string `json:"team2" gorm:"not null"`
	Date     string `json:"date" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;default:true"`

	// Vote-derived fields, recomputed by the aggregation engine.
	TotalVotes           int    `json:"total_votes" gorm:"column:total_votes;default:0"`
	Team1Votes           int    `json:"team1_votes" gorm:"column:team1_votes;default:0"`
	Team2Votes           int    `json:"team2_votes" gorm:"column:team2_votes;default:0"`
	UniqueVoters         int    `json:"unique_voters" gorm:"column:unique_voters;default:0"`
	MostVotedPlayer      string `json:"most_voted_player" gorm:"column:most_voted_player_name"`
	MostVotedPlayerVotes int    `json:"most_voted_player_votes" gorm:"column:most_voted_player_votes;default:0"`

	// TopPlayers is the per-player vote breakdown (player id -> votes).
	// It is recomputed from the votes table rather than persisted.
	TopPlayers map[int]int `json:"top_players,omitempty" gorm:"-"`

	// Editable fields.
	Team1Possession    int `json:"team1_possession" gorm:"column:team1_possession;default:50"`
	Team2Possession    int `json:"team2_possession" gorm:"column:team2_possession;default:50"`
	Team1Shots         int `json:"team1_shots" gorm:"column:team1_shots;default:0"`
	Team2Shots         int `json:"team2_shots" gorm:"column:team2_shots;default:0"`
	Team1ShotsOnTarget int `json:"team1_shots_on_target" gorm:"column:team1_shots_on_target;default:0"`
	Team2ShotsOnTarget int `json:"team2_shots_on_target" gorm:"column:team2_shots_on_target;default:0"`
	Team1Corners       int `json:"team1_corners" gorm:"column:team1_corners;default:0"`
	Team2Corners       int `json:"team2_corners" gorm:"column:team2_corners;default:0"`
	Team1Fouls         int `json:"team1_fouls" gorm:"column:team1_fouls;default:0"`
	Team2Fouls         int `json:"team2_fouls" gorm:"column:team2_fouls;default:0"`
	Team1YellowCards   int `json:"team1_yellow_cards" gorm:"column:team1_yellow_cards;default:0"`
	Team2YellowCards   int `json:"team2_yellow_cards" gorm:"column:team2_yellow_cards;default:0"`
	Team1RedCards      int `json:"team1_red_cards" gorm:"column:team1_red_cards;default:0"`
	Team2RedCards      int `json:"team2_red_cards" gorm:"column:team2_red_cards;default:0"`
	Team1Goals         int `json:"team1_goals" gorm:"column:team1_goals;default:0"`
	Team2Goals         int `json:"team2_goals" gorm:"column:team2_goals;default:0"`
}

// TableName returns the table name for MatchStats
func (MatchStats) TableName() string {
	return "match_stats"
}

// DefaultMatchStats returns the stats row seeded for a new or stats-less
// match: 50/50 possession, everything else zero.
func DefaultMatchStats(m Match) MatchStats {
	return MatchStats{
		MatchID:         m.ID,
		Team1:           m.Team1,
		Team2:           m.Team2,
		Date:            m.Date,
		IsActive:        m.IsActive,
		Team1Possession: 50,
		Team2Possession: 50,
	}
}
