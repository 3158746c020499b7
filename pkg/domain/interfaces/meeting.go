package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// MeetingRepository defines the interface for Meeting data access
type MeetingRepository interface {
	Create(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error)
	Get(ctx context.Context, workspaceID string, id types.MeetingID) (*model.Meeting, error)

	// List retrieves all meetings in the workspace ordered by start time
	List(ctx context.Context, workspaceID string) ([]*model.Meeting, error)

	// Update replaces an existing meeting if m.Rev matches the stored revision
	Update(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error)

	Delete(ctx context.Context, workspaceID string, id types.MeetingID) error
}
