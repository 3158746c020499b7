package interfaces

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// MemberRepository defines the interface for the member directory snapshot.
// The refresh worker replaces the whole snapshot (DeleteAll then SaveMany) to
// avoid per-member writes in loops.
type MemberRepository interface {
	Get(ctx context.Context, workspaceID string, id types.UserID) (*model.Member, error)
	List(ctx context.Context, workspaceID string) ([]*model.Member, error)
	SaveMany(ctx context.Context, workspaceID string, members []*model.Member) error
	DeleteAll(ctx context.Context, workspaceID string) error

	GetMetadata(ctx context.Context, workspaceID string) (*model.DirectoryMetadata, error)
	PutMetadata(ctx context.Context, workspaceID string, meta *model.DirectoryMetadata) error
}
