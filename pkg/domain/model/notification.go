package model

import (
	"time"

	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Notification is a persisted sink record describing a state-changing event
// addressed to one user. Delivery beyond persistence (Slack DM) is best effort.
type Notification struct {
	ID        types.NotificationID
	UserID    types.UserID
	Type      types.NotificationType
	Message   string
	RelatedID string // ID of the task/request/meeting that triggered the event
	Read      bool
	CreatedAt time.Time
}
