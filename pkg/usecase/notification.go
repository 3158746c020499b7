package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

type NotificationUseCase struct {
	repo interfaces.Repository
}

func NewNotificationUseCase(repo interfaces.Repository) *NotificationUseCase {
	return &NotificationUseCase{
		repo: repo,
	}
}

func (uc *NotificationUseCase) ListByUser(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.Notification, error) {
	list, err := uc.repo.Notification().ListByUser(ctx, workspaceID, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notifications", goerr.V("user_id", userID))
	}
	return list, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, workspaceID string, id types.NotificationID) error {
	if err := uc.repo.Notification().MarkRead(ctx, workspaceID, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrNotificationNotFound, "notification not found", goerr.V("notification_id", id))
		}
		return goerr.Wrap(err, "failed to mark notification read", goerr.V("notification_id", id))
	}
	return nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, workspaceID string, userID types.UserID) error {
	if err := uc.repo.Notification().MarkAllRead(ctx, workspaceID, userID); err != nil {
		return goerr.Wrap(err, "failed to mark all notifications read", goerr.V("user_id", userID))
	}
	return nil
}
