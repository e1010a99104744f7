package models

// Vote is one row of the per-match, per-player tally. The pair
// (match_id, player_id) is unique; Votes only increases.
type Vote struct {
	MatchID  int `json:"match_id" gorm:"column:match_id;primaryKey"`
	PlayerID int `json:"player_id" gorm:"column:player_id;primaryKey"`
	Votes    int `json:"votes" gorm:"default:0"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
