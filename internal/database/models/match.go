package models

// DefaultFormation is used when a match is created without explicit lineups.
const DefaultFormation = "4-3-3"

// Match represents a fixture between two teams. Team1/Team2 are free-text
// names, not foreign keys: a match may reference teams that were never
// registered as Team rows. Only IsActive and the formations are mutable
// after creation.
type Match struct {
	ID             int    `json:"id" gorm:"primaryKey"`
	Team1          string `json:"team1" gorm:"not null"`
	Team2          string `json:"team2" gorm:"not null"`
	Date           string `json:"date" gorm:"not null;index"`
	IsActive       bool   `json:"isActive" gorm:"column:is_active;default:true;index"`
	Team1Formation string `json:"team1_formation" gorm:"column:team1_formation;default:'4-3-3'"`
	Team2Formation string `json:"team2_formation" gorm:"column:team2_formation;default:'4-3-3'"`
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
