package types

import "github.com/google/uuid"

// TaskID is a unique identifier for a single-receiver task
type TaskID string

// NewTaskID generates a new random TaskID
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// String returns the string representation of the task ID
func (id TaskID) String() string {
	return string(id)
}

// RequestID is a unique identifier for a multi-recipient request
type RequestID string

// NewRequestID generates a new random RequestID
func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// String returns the string representation of the request ID
func (id RequestID) String() string {
	return string(id)
}

// DispositionID is a unique identifier for a disposition directive
type DispositionID string

// NewDispositionID generates a new random DispositionID
func NewDispositionID() DispositionID {
	return DispositionID(uuid.NewString())
}

// String returns the string representation of the disposition ID
func (id DispositionID) String() string {
	return string(id)
}

// MeetingID is a unique identifier for a meeting
type MeetingID string

// NewMeetingID generates a new random MeetingID
func NewMeetingID() MeetingID {
	return MeetingID(uuid.NewString())
}

// String returns the string representation of the meeting ID
func (id MeetingID) String() string {
	return string(id)
}

// NotificationID is a unique identifier for a notification record
type NotificationID string

// NewNotificationID generates a new random NotificationID
func NewNotificationID() NotificationID {
	return NotificationID(uuid.NewString())
}

// String returns the string representation of the notification ID
func (id NotificationID) String() string {
	return string(id)
}

// UserID identifies a member of the workspace directory
type UserID string

// String returns the string representation of the user ID
func (id UserID) String() string {
	return string(id)
}
