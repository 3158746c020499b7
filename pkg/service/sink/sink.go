package sink

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/service/slack"
	"github.com/opsdesk-lab/teamboard/pkg/utils/async"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
)

// Sink persists every emitted event as a notification record and, when a Slack
// service is wired, mirrors it as a DM. Delivery is fire-and-forget: a failed
// persist or DM is logged, never surfaced to the emitting operation.
type Sink struct {
	repo  interfaces.Repository
	slack slack.Service
}

var _ interfaces.NotificationSink = &Sink{}

type Option func(*Sink)

// WithSlack enables DM delivery alongside the persisted record
func WithSlack(svc slack.Service) Option {
	return func(s *Sink) {
		s.slack = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *Sink {
	s := &Sink{
		repo: repo,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) Emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message string, relatedID string) {
	record := &model.Notification{
		UserID:    userID,
		Type:      eventType,
		Message:   message,
		RelatedID: relatedID,
	}

	if _, err := s.repo.Notification().Create(ctx, workspaceID, record); err != nil {
		logging.From(ctx).Error("failed to persist notification",
			"error", goerr.Unwrap(err),
			"workspace_id", workspaceID,
			"user_id", userID,
			"type", eventType)
		return
	}

	if s.slack != nil {
		userID := userID
		async.Dispatch(ctx, func(ctx context.Context) error {
			if _, err := s.slack.PostDirectMessage(ctx, string(userID), message); err != nil {
				return goerr.Wrap(err, "failed to deliver notification DM",
					goerr.V("user_id", userID))
			}
			return nil
		})
	}
}
