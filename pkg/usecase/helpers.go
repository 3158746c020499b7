package usecase

import (
	"context"

	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// resolveName looks up a user's display name for write-time denormalization.
// Without a directory, or when the lookup misses, the raw ID stands in.
func resolveName(ctx context.Context, dir interfaces.UserDirectory, workspaceID string, id types.UserID) string {
	if dir == nil || id == "" {
		return string(id)
	}
	member, err := dir.Lookup(ctx, workspaceID, id)
	if err != nil {
		return string(id)
	}
	return member.DisplayName()
}
