package types

import "fmt"

// DispositionStatus represents the tracking state of a disposition directive
type DispositionStatus string

const (
	DispositionStatusActive    DispositionStatus = "active"
	DispositionStatusPending   DispositionStatus = "pending"
	DispositionStatusCompleted DispositionStatus = "completed"
)

// AllDispositionStatuses returns all valid disposition statuses
func AllDispositionStatuses() []DispositionStatus {
	return []DispositionStatus{
		DispositionStatusActive,
		DispositionStatusPending,
		DispositionStatusCompleted,
	}
}

// IsValid checks if the disposition status is valid
func (s DispositionStatus) IsValid() bool {
	switch s {
	case DispositionStatusActive,
		DispositionStatusPending,
		DispositionStatusCompleted:
		return true
	default:
		return false
	}
}

// Normalize returns the status, treating empty as DispositionStatusActive
func (s DispositionStatus) Normalize() DispositionStatus {
	if s == "" {
		return DispositionStatusActive
	}
	return s
}

// String returns the string representation of the disposition status
func (s DispositionStatus) String() string {
	return string(s)
}

// ParseDispositionStatus parses a string into a DispositionStatus
func ParseDispositionStatus(s string) (DispositionStatus, error) {
	status := DispositionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid disposition status: %s", s)
	}
	return status, nil
}
