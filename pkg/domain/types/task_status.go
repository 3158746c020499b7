package types

import "fmt"

// TaskStatus represents the lifecycle state of a single-receiver task
type TaskStatus string

const (
	TaskStatusPending           TaskStatus = "pending"
	TaskStatusAccepted          TaskStatus = "accepted"
	TaskStatusDeclined          TaskStatus = "declined"
	TaskStatusInProgress        TaskStatus = "in-progress"
	TaskStatusRevisionRequested TaskStatus = "revision-requested"
	TaskStatusCompleted         TaskStatus = "completed"
)

// AllTaskStatuses returns all valid task statuses
func AllTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusAccepted,
		TaskStatusDeclined,
		TaskStatusInProgress,
		TaskStatusRevisionRequested,
		TaskStatusCompleted,
	}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending,
		TaskStatusAccepted,
		TaskStatusDeclined,
		TaskStatusInProgress,
		TaskStatusRevisionRequested,
		TaskStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are defined from s
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusDeclined || s == TaskStatusCompleted
}

// Normalize returns the status, treating empty as TaskStatusPending
func (s TaskStatus) Normalize() TaskStatus {
	if s == "" {
		return TaskStatusPending
	}
	return s
}

// String returns the string representation of the task status
func (s TaskStatus) String() string {
	return string(s)
}

// ParseTaskStatus parses a string into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return status, nil
}
