package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// NotificationSink receives event records when state-changing actions occur.
// Fire-and-forget: no acknowledgement and no retry contract.
type NotificationSink interface {
	Emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message string, relatedID string)
}

// UserDirectory resolves user IDs to member records. The core denormalizes
// names at write time (snapshot at creation), never at read time.
type UserDirectory interface {
	Lookup(ctx context.Context, workspaceID string, id types.UserID) (*model.Member, error)
	List(ctx context.Context, workspaceID string) ([]*model.Member, error)
}

// EmailGateway sends email on behalf of meeting scheduling. Implementations
// may simulate delivery; the core only records whether it invoked the gateway.
type EmailGateway interface {
	Send(ctx context.Context, recipients []string, subject, body string) error
}
