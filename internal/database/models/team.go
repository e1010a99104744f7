package models

// Team represents a club that players belong to. Names are free text and
// deliberately not unique: the ledger never rejects a duplicate, so the
// schema must not either.
type Team struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null;index"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
