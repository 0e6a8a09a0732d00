package services

import "errors"

// Failure taxonomy shared by the service layer. Handlers translate these
// into fixed private responses; everything else surfaces as an internal
// error.
var (
	// ErrNotFound - the requested case or statute does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey - insert collided with an existing primary key
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnauthorized - caller lacks the required capability
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPageBoundary - navigation past the first or last directory page;
	// a notice, not a failure: the view state is unchanged
	ErrPageBoundary = errors.New("page boundary reached")
	// ErrSessionExpired - the directory view timed out; the listing
	// command must be re-issued
	ErrSessionExpired = errors.New("directory session expired")
)
