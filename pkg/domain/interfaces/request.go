package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// RequestRepository defines the interface for RequestTask data access
type RequestRepository interface {
	Create(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error)
	Get(ctx context.Context, workspaceID string, id types.RequestID) (*model.RequestTask, error)
	List(ctx context.Context, workspaceID string) ([]*model.RequestTask, error)

	// ListByAssignee retrieves requests addressed to the given user, newest first
	ListByAssignee(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.RequestTask, error)

	// Update replaces an existing request if req.Rev matches the stored revision
	Update(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error)

	Delete(ctx context.Context, workspaceID string, id types.RequestID) error
}
