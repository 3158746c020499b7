package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// NotificationRepository defines the interface for Notification data access
type NotificationRepository interface {
	Create(ctx context.Context, workspaceID string, n *model.Notification) (*model.Notification, error)

	// ListByUser retrieves notifications for a user, unread first then newest first
	ListByUser(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.Notification, error)

	// MarkRead flags a single notification as read
	MarkRead(ctx context.Context, workspaceID string, id types.NotificationID) error

	// MarkAllRead flags all of a user's notifications as read
	MarkAllRead(ctx context.Context, workspaceID string, userID types.UserID) error
}
