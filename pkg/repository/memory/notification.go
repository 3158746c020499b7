package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

type notificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]map[types.NotificationID]*model.Notification
}

func newNotificationRepository() *notificationRepository {
	return &notificationRepository{
		notifications: make(map[string]map[types.NotificationID]*model.Notification),
	}
}

func (r *notificationRepository) ensureWorkspace(workspaceID string) {
	if _, exists := r.notifications[workspaceID]; !exists {
		r.notifications[workspaceID] = make(map[types.NotificationID]*model.Notification)
	}
}

func copyNotification(n *model.Notification) *model.Notification {
	copied := *n
	return &copied
}

func (r *notificationRepository) Create(ctx context.Context, workspaceID string, n *model.Notification) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureWorkspace(workspaceID)

	created := copyNotification(n)
	if created.ID == "" {
		created.ID = types.NewNotificationID()
	}
	created.CreatedAt = time.Now().UTC()

	r.notifications[workspaceID][created.ID] = created
	return copyNotification(created), nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.notifications[workspaceID]
	if !exists {
		return []*model.Notification{}, nil
	}

	result := make([]*model.Notification, 0, len(ws))
	for _, n := range ws {
		if n.UserID == userID {
			result = append(result, copyNotification(n))
		}
	}

	// Unread first, then newest first
	sort.Slice(result, func(i, j int) bool {
		if result[i].Read != result[j].Read {
			return !result[i].Read
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, workspaceID string, id types.NotificationID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.notifications[workspaceID]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "notification not found", goerr.V("id", id))
	}

	n, exists := ws[id]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "notification not found", goerr.V("id", id))
	}

	n.Read = true
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, workspaceID string, userID types.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.notifications[workspaceID]
	if !exists {
		return nil
	}

	for _, n := range ws {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}
