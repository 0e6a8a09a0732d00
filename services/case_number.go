package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Case numbers follow the format <YY>-<DEPT>-<SEQ>, e.g. 25-CID-014.
// The sequence is 3 digits, zero padded, and resets per calendar year and
// department bucket: 25-CID-001 and 26-CID-001 may coexist.

// CurrentYearPrefix returns the 2-digit year segment for newly allocated
// case numbers, from platform-local wall-clock time.
func CurrentYearPrefix() string {
	return time.Now().Format("06")
}

// NextCaseNumber computes the next free case number for a department and
// year bucket by scanning the existing numbers. Entries that do not match
// the bucket are ignored; entries whose sequence segment does not parse are
// silently skipped so hand-imported legacy numbers never poison allocation.
// There is no separately persisted counter - the full existing set is the
// source of truth at the moment of the call.
func NextCaseNumber(departmentCode string, existing []string, yearPrefix string) string {
	prefix := yearPrefix + "-" + departmentCode + "-"

	maxSeq := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, prefix) {
			continue
		}
		parts := strings.Split(number, "-")
		if len(parts) < 3 {
			continue
		}
		seq, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return fmt.Sprintf("%s-%s-%03d", yearPrefix, departmentCode, maxSeq+1)
}
