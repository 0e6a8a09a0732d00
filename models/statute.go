package models

// Statute is an entry in the unit's statute directory (extended variant).
// Read-heavy; inserts with a duplicate code fail with a uniqueness error
// surfaced to the caller.
type Statute struct {
	CodeID         string `gorm:"primarykey" json:"code_id"`
	Title          string `gorm:"not null" json:"title"`
	Classification string `json:"classification"`
	Description    string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Statute model
func (Statute) TableName() string {
	return "statutes"
}
