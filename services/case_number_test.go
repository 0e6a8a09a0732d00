package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextCaseNumber(t *testing.T) {
	tests := []struct {
		name     string
		dept     string
		existing []string
		year     string
		expected string
	}{
		{
			name:     "empty set starts at 001",
			dept:     "CID",
			existing: []string{},
			year:     "25",
			expected: "25-CID-001",
		},
		{
			name:     "nil set starts at 001",
			dept:     "CID",
			existing: nil,
			year:     "25",
			expected: "25-CID-001",
		},
		{
			name:     "increments the maximum",
			dept:     "CID",
			existing: []string{"25-CID-001", "25-CID-003", "25-CID-002"},
			year:     "25",
			expected: "25-CID-004",
		},
		{
			name:     "other departments ignored",
			dept:     "CID",
			existing: []string{"25-DTF-007", "25-CID-002"},
			year:     "25",
			expected: "25-CID-003",
		},
		{
			name:     "other years ignored",
			dept:     "CID",
			existing: []string{"24-CID-099", "25-CID-001"},
			year:     "25",
			expected: "25-CID-002",
		},
		{
			name:     "non-matching set starts at 001",
			dept:     "CID",
			existing: []string{"24-CID-099", "25-DTF-001"},
			year:     "25",
			expected: "25-CID-001",
		},
		{
			name:     "malformed legacy numbers skipped",
			dept:     "CID",
			existing: []string{"25-CID-abc", "garbage", "25-CID-002", "25-CID-"},
			year:     "25",
			expected: "25-CID-003",
		},
		{
			name:     "sequence grows past padding width",
			dept:     "CID",
			existing: []string{"25-CID-999"},
			year:     "25",
			expected: "25-CID-1000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextCaseNumber(tt.dept, tt.existing, tt.year)
			assert.Equal(t, tt.expected, got)
			assert.NotContains(t, tt.existing, got, "allocated number must be fresh")
		})
	}
}

func TestCurrentYearPrefix(t *testing.T) {
	prefix := CurrentYearPrefix()
	assert.Len(t, prefix, 2)
	for _, r := range prefix {
		assert.True(t, r >= '0' && r <= '9')
	}
}
