package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// Placeholder values for records backfilled from before the system existed
const (
	legacyCharges   = "LEGACY"
	legacyNarrative = "Imported record."
)

// CaseService owns the authoritative copy of cases and their jackets.
// All mutation of either goes through here.
type CaseService struct {
	db *gorm.DB
}

// NewCaseService creates a new case service instance
func NewCaseService(db *gorm.DB) *CaseService {
	return &CaseService{db: db}
}

// Create opens a new investigation file: allocates the next case number for
// the department, stamps it OPEN with the creation time, and inserts it.
// Two concurrent filings in the same department bucket can compute the same
// sequence number; the loser of that race hits the primary-key constraint,
// so the number is recomputed and the insert retried exactly once.
func (s *CaseService) Create(department, filer, suspect, charges, narrative string) (*models.Case, error) {
	record, err := s.insertFresh(department, filer, suspect, charges, narrative)
	if errors.Is(err, ErrDuplicateKey) {
		record, err = s.insertFresh(department, filer, suspect, charges, narrative)
	}
	return record, err
}

func (s *CaseService) insertFresh(department, filer, suspect, charges, narrative string) (*models.Case, error) {
	number, err := s.nextNumber(department)
	if err != nil {
		return nil, err
	}

	record := &models.Case{
		CaseNumber: number,
		Detective:  filer,
		Suspect:    suspect,
		Charges:    charges,
		Narrative:  narrative,
		Status:     models.CaseStatusOpen,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := s.db.Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("case %s: %w", number, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return record, nil
}

// nextNumber reads the full set of case numbers in the department's
// current-year bucket and derives the next free one
func (s *CaseService) nextNumber(department string) (string, error) {
	year := CurrentYearPrefix()

	var existing []string
	err := s.db.Model(&models.Case{}).
		Where("case_number LIKE ?", year+"-"+department+"-%").
		Pluck("case_number", &existing).Error
	if err != nil {
		return "", fmt.Errorf("failed to scan case numbers: %w", err)
	}

	return NextCaseNumber(department, existing, year), nil
}

// Get fetches a single case by number
func (s *CaseService) Get(caseNumber string) (*models.Case, error) {
	var record models.Case
	if err := s.db.First(&record, "case_number = ?", caseNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("case %s: %w", caseNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch case: %w", err)
	}
	return &record, nil
}

// CasePatch carries the optional fields of a partial case update.
// Nil fields are left untouched.
type CasePatch struct {
	Suspect   *string
	Narrative *string
	Status    *string
}

// Update applies a partial update to an existing case. The case number,
// detective, and timestamp are immutable and never part of a patch.
func (s *CaseService) Update(caseNumber string, patch CasePatch) (*models.Case, error) {
	record, err := s.Get(caseNumber)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Suspect != nil {
		updates["suspect"] = *patch.Suspect
	}
	if patch.Narrative != nil {
		updates["narrative"] = *patch.Narrative
	}
	if patch.Status != nil {
		status := strings.ToUpper(*patch.Status)
		if !models.IsValidCaseStatus(status) {
			return nil, fmt.Errorf("invalid case status %q", *patch.Status)
		}
		updates["status"] = status
	}
	if len(updates) == 0 {
		return record, nil
	}

	if err := s.db.Model(record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return s.Get(caseNumber)
}

// AppendEvidence appends a formatted evidence line to the case narrative.
// This is a read-modify-write against the store: concurrent appends to the
// same case can race and the later write wins.
func (s *CaseService) AppendEvidence(caseNumber, contributor, url string) (*models.Case, error) {
	record, err := s.Get(caseNumber)
	if err != nil {
		return nil, err
	}

	record.Narrative += fmt.Sprintf("\n\n[EVIDENCE] %s: %s", contributor, url)
	if err := s.db.Model(record).Update("narrative", record.Narrative).Error; err != nil {
		return nil, fmt.Errorf("failed to append evidence: %w", err)
	}
	return record, nil
}

// List returns all cases, newest filing first. Paging is a presentation
// concern handled by the directory view, not here.
func (s *CaseService) List() ([]models.Case, error) {
	var cases []models.Case
	if err := s.db.Order("timestamp DESC").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// Delete removes a case and cascades to its jackets. The cascade is
// application-level - the store enforces no referential integrity.
// Deleting a number that does not exist is not an error.
func (s *CaseService) Delete(caseNumber string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Case{}, "case_number = ?", caseNumber).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CaseJacket{}, "case_number = ?", caseNumber).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// ImportLegacy backfills a pre-system record under its historical number,
// bypassing the allocator. A colliding number is terminal - there is
// nothing to recompute.
func (s *CaseService) ImportLegacy(caseNumber, filer, suspect, status string) (*models.Case, error) {
	status = strings.ToUpper(status)
	if !models.IsValidCaseStatus(status) {
		return nil, fmt.Errorf("invalid case status %q", status)
	}

	record := &models.Case{
		CaseNumber: caseNumber,
		Detective:  filer,
		Suspect:    suspect,
		Charges:    legacyCharges,
		Narrative:  legacyNarrative,
		Status:     status,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if err := s.db.Create(record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("case %s: %w", caseNumber, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to import case: %w", err)
	}
	return record, nil
}

// AttachJacket links an external document to a case. There is deliberately
// no existence check against the case: attaching to an unknown number
// succeeds and produces an orphaned jacket.
func (s *CaseService) AttachJacket(caseNumber, url, label, addedBy string) (*models.CaseJacket, error) {
	jacket := &models.CaseJacket{
		CaseNumber: caseNumber,
		URL:        url,
		Label:      label,
		AddedBy:    addedBy,
	}
	if err := s.db.Create(jacket).Error; err != nil {
		return nil, fmt.Errorf("failed to attach jacket: %w", err)
	}
	return jacket, nil
}

// ListJackets returns the jackets attached to a case in insertion order
func (s *CaseService) ListJackets(caseNumber string) ([]models.CaseJacket, error) {
	var jackets []models.CaseJacket
	err := s.db.Where("case_number = ?", caseNumber).Order("id ASC").Find(&jackets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list jackets: %w", err)
	}
	return jackets, nil
}

// isDuplicateKey reports whether err is a primary-key collision. The sqlite
// driver surfaces these as constraint errors unless gorm's error translation
// is enabled, so both forms are checked.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint")
}
