package models

// Player represents a player eligible to receive votes. Votes is a running
// career counter, only ever incremented by the voting service.
type Player struct {
	ID       int    `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null;index"`
	Position string `json:"position" gorm:"not null"`
	TeamID   int    `json:"team_id" gorm:"column:team_id;not null;index"`
	Votes    int    `json:"votes" gorm:"default:0"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
