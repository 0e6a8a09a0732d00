package models

// Case status constants
const (
	CaseStatusOpen   = "OPEN"
	CaseStatusClosed = "CLOSED"
	CaseStatusCold   = "COLD"
)

// Case represents a single investigation file. The case number is assigned
// once at filing time (see services.NextCaseNumber) and never changes.
type Case struct {
	// Case number format: <YY>-<DEPT>-<SEQ>, e.g. 25-CID-014
	CaseNumber string `gorm:"primarykey" json:"case_number"`

	// Display name of the filing detective, set once at creation
	Detective string `gorm:"not null" json:"detective"`

	Suspect   string `json:"suspect"`
	Charges   string `gorm:"type:text" json:"charges"`
	Narrative string `gorm:"type:text" json:"narrative"`

	Status string `gorm:"not null;default:OPEN;index" json:"status"`

	// Creation time as an ISO-8601 string; immutable, and the sole sort
	// key for the case directory (descending)
	Timestamp string `gorm:"not null;index" json:"timestamp"`
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// IsOpen checks if the case is open
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsCold checks if the case has gone cold
func (c *Case) IsCold() bool {
	return c.Status == CaseStatusCold
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	validStatuses := []string{
		CaseStatusOpen,
		CaseStatusClosed,
		CaseStatusCold,
	}
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}
	return false
}
