package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// DispositionRepository defines the interface for Disposition data access.
// Dispositions are soft-deleted: List returns only active records unless
// includeInactive is set.
type DispositionRepository interface {
	Create(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error)
	Get(ctx context.Context, workspaceID string, id types.DispositionID) (*model.Disposition, error)
	List(ctx context.Context, workspaceID string, includeInactive bool) ([]*model.Disposition, error)

	// Update replaces an existing disposition if d.Rev matches the stored revision
	Update(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error)
}
