package directory

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Directory resolves workspace members from the repository snapshot maintained
// by the refresh worker, falling back to the static roster configured per
// workspace when the snapshot has no entry.
type Directory struct {
	repo     interfaces.Repository
	registry *model.WorkspaceRegistry
}

var _ interfaces.UserDirectory = &Directory{}

func New(repo interfaces.Repository, registry *model.WorkspaceRegistry) *Directory {
	return &Directory{
		repo:     repo,
		registry: registry,
	}
}

func (d *Directory) Lookup(ctx context.Context, workspaceID string, id types.UserID) (*model.Member, error) {
	member, err := d.repo.Member().Get(ctx, workspaceID, id)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to look up member", goerr.V("user_id", id))
	}

	if roster := d.roster(workspaceID); roster != nil {
		for i := range roster {
			if roster[i].ID == id {
				member := roster[i]
				return &member, nil
			}
		}
	}

	return nil, goerr.Wrap(interfaces.ErrNotFound, "member not found",
		goerr.V("workspace_id", workspaceID),
		goerr.V("user_id", id))
}

func (d *Directory) List(ctx context.Context, workspaceID string) ([]*model.Member, error) {
	members, err := d.repo.Member().List(ctx, workspaceID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list members", goerr.V("workspace_id", workspaceID))
	}
	if len(members) > 0 {
		return members, nil
	}

	roster := d.roster(workspaceID)
	result := make([]*model.Member, 0, len(roster))
	for i := range roster {
		member := roster[i]
		result = append(result, &member)
	}
	return result, nil
}

func (d *Directory) roster(workspaceID string) []model.Member {
	if d.registry == nil {
		return nil
	}
	entry, err := d.registry.Get(workspaceID)
	if err != nil {
		return nil
	}
	return entry.Members
}
