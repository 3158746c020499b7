package types

import "fmt"

// RequestStatus represents the composite status of a multi-recipient request.
// The pending/accepted/declined axis is always derived from the per-recipient
// response set; in-progress and completed are layered on top by progress updates
// once the derived base is accepted.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusDeclined   RequestStatus = "declined"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusCompleted  RequestStatus = "completed"
)

// AllRequestStatuses returns all valid request statuses
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusPending,
		RequestStatusAccepted,
		RequestStatusDeclined,
		RequestStatusInProgress,
		RequestStatusCompleted,
	}
}

// IsValid checks if the request status is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending,
		RequestStatusAccepted,
		RequestStatusDeclined,
		RequestStatusInProgress,
		RequestStatusCompleted:
		return true
	default:
		return false
	}
}

// TracksProgress reports whether progress updates are meaningful in this state
func (s RequestStatus) TracksProgress() bool {
	return s == RequestStatusAccepted || s == RequestStatusInProgress
}

// String returns the string representation of the request status
func (s RequestStatus) String() string {
	return string(s)
}

// ParseRequestStatus parses a string into a RequestStatus
func ParseRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", s)
	}
	return status, nil
}
