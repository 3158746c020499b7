package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// TaskRepository defines the interface for Task data access. Update is a
// compare-and-swap on the entity's Rev counter: a write whose expected revision
// no longer matches the stored one fails with ErrRevisionMismatch.
type TaskRepository interface {
	// Create stores a new task. ID, CreatedAt and Rev are assigned by the caller
	// or stamped by the repository when zero.
	Create(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error)

	// Get retrieves a task by ID
	Get(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error)

	// List retrieves all tasks in the workspace, newest first
	List(ctx context.Context, workspaceID string) ([]*model.Task, error)

	// ListByReceiver retrieves tasks assigned to the given user, newest first
	ListByReceiver(ctx context.Context, workspaceID string, receiverID types.UserID) ([]*model.Task, error)

	// Update replaces an existing task if task.Rev matches the stored revision
	Update(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error)

	// Delete removes a task by ID
	Delete(ctx context.Context, workspaceID string, id types.TaskID) error
}
