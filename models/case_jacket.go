package models

// CaseJacket is a labeled external document link associated with a case.
// Jackets are write-once: created by the attach operation, removed only by
// the case-delete cascade. The case number is not enforced as a foreign key
// by the store; integrity is application-level and orphaned jackets are
// tolerated.
type CaseJacket struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	CaseNumber string `gorm:"not null;index" json:"case_number"`
	URL        string `gorm:"not null" json:"url"`
	Label      string `gorm:"not null" json:"label"`
	AddedBy    string `json:"added_by"`
}

// TableName specifies the table name for CaseJacket model
func (CaseJacket) TableName() string {
	return "case_jackets"
}
