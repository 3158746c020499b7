package types

import "fmt"

// NotificationType classifies a notification record emitted by the sink
type NotificationType string

const (
	NotificationRequestCreated   NotificationType = "request-created"
	NotificationRequestAccepted  NotificationType = "request-accepted"
	NotificationRequestDeclined  NotificationType = "request-declined"
	NotificationRequestCompleted NotificationType = "request-completed"
	NotificationTaskAssigned     NotificationType = "task-assigned"
	NotificationTaskRevision     NotificationType = "task-revision"
	NotificationMeetingScheduled NotificationType = "meeting-scheduled"
)

// AllNotificationTypes returns all valid notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		NotificationRequestCreated,
		NotificationRequestAccepted,
		NotificationRequestDeclined,
		NotificationRequestCompleted,
		NotificationTaskAssigned,
		NotificationTaskRevision,
		NotificationMeetingScheduled,
	}
}

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationRequestCreated,
		NotificationRequestAccepted,
		NotificationRequestDeclined,
		NotificationRequestCompleted,
		NotificationTaskAssigned,
		NotificationTaskRevision,
		NotificationMeetingScheduled:
		return true
	default:
		return false
	}
}

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}

// ParseNotificationType parses a string into a NotificationType
func ParseNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
