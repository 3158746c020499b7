package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

type memberRepository struct {
	mu       sync.RWMutex
	members  map[string]map[types.UserID]*model.Member
	metadata map[string]*model.DirectoryMetadata
}

func newMemberRepository() *memberRepository {
	return &memberRepository{
		members:  make(map[string]map[types.UserID]*model.Member),
		metadata: make(map[string]*model.DirectoryMetadata),
	}
}

func copyMember(m *model.Member) *model.Member {
	copied := *m
	return &copied
}

func (r *memberRepository) Get(ctx context.Context, workspaceID string, id types.UserID) (*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.members[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "member not found", goerr.V("id", id))
	}

	m, exists := ws[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "member not found", goerr.V("id", id))
	}

	return copyMember(m), nil
}

func (r *memberRepository) List(ctx context.Context, workspaceID string) ([]*model.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.members[workspaceID]
	if !exists {
		return []*model.Member{}, nil
	}

	members := make([]*model.Member, 0, len(ws))
	for _, m := range ws {
		members = append(members, copyMember(m))
	}

	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})

	return members, nil
}

func (r *memberRepository) SaveMany(ctx context.Context, workspaceID string, members []*model.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.members[workspaceID]; !exists {
		r.members[workspaceID] = make(map[types.UserID]*model.Member)
	}

	for _, m := range members {
		r.members[workspaceID][m.ID] = copyMember(m)
	}
	return nil
}

func (r *memberRepository) DeleteAll(ctx context.Context, workspaceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[workspaceID] = make(map[types.UserID]*model.Member)
	return nil
}

func (r *memberRepository) GetMetadata(ctx context.Context, workspaceID string) (*model.DirectoryMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "directory metadata not found",
			goerr.V("workspace_id", workspaceID))
	}

	copied := *meta
	return &copied, nil
}

func (r *memberRepository) PutMetadata(ctx context.Context, workspaceID string, meta *model.DirectoryMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *meta
	r.metadata[workspaceID] = &copied
	return nil
}
