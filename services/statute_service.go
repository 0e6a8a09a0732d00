package services

import (
	"errors"
	"fmt"
	"strings"

	"case_desk_app_go/models"

	"gorm.io/gorm"
)

// StatuteService handles the unit's statute directory (extended variant).
// Read-mostly: entries are added by unit administrators and searched by
// everyone.
type StatuteService struct {
	db *gorm.DB
}

// NewStatuteService creates a new statute service instance
func NewStatuteService(db *gorm.DB) *StatuteService {
	return &StatuteService{db: db}
}

// Add inserts a statute entry. A duplicate code fails with ErrDuplicateKey
// and leaves the original entry unmodified; the caller is not expected to
// retry.
func (s *StatuteService) Add(codeID, title, classification, description string) (*models.Statute, error) {
	statute := &models.Statute{
		CodeID:         codeID,
		Title:          title,
		Classification: classification,
		Description:    description,
	}
	if err := s.db.Create(statute).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("statute %s: %w", codeID, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to add statute: %w", err)
	}
	return statute, nil
}

// Get fetches a single statute by code
func (s *StatuteService) Get(codeID string) (*models.Statute, error) {
	var statute models.Statute
	if err := s.db.First(&statute, "code_id = ?", codeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("statute %s: %w", codeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch statute: %w", err)
	}
	return &statute, nil
}

// Search performs a case-insensitive substring match against statute codes
// and titles, ordered by code
func (s *StatuteService) Search(query string) ([]models.Statute, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var statutes []models.Statute
	err := s.db.
		Where("LOWER(code_id) LIKE ? OR LOWER(title) LIKE ?", pattern, pattern).
		Order("code_id ASC").
		Find(&statutes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search statutes: %w", err)
	}
	return statutes, nil
}
