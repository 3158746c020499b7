package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

type dispositionRepository struct {
	mu           sync.RWMutex
	dispositions map[string]map[types.DispositionID]*model.Disposition
}

func newDispositionRepository() *dispositionRepository {
	return &dispositionRepository{
		dispositions: make(map[string]map[types.DispositionID]*model.Disposition),
	}
}

func (r *dispositionRepository) ensureWorkspace(workspaceID string) {
	if _, exists := r.dispositions[workspaceID]; !exists {
		r.dispositions[workspaceID] = make(map[types.DispositionID]*model.Disposition)
	}
}

// copyDisposition creates a deep copy of a disposition
func copyDisposition(d *model.Disposition) *model.Disposition {
	copied := *d

	copied.GiverNames = make([]string, len(d.GiverNames))
	copy(copied.GiverNames, d.GiverNames)

	copied.ReceiverIDs = make([]types.UserID, len(d.ReceiverIDs))
	copy(copied.ReceiverIDs, d.ReceiverIDs)

	copied.ReceiverNames = make([]string, len(d.ReceiverNames))
	copy(copied.ReceiverNames, d.ReceiverNames)

	copied.Fillers = make([]model.Filler, len(d.Fillers))
	copy(copied.Fillers, d.Fillers)

	if d.LastEditedAt != nil {
		editedAt := *d.LastEditedAt
		copied.LastEditedAt = &editedAt
	}

	return &copied
}

func (r *dispositionRepository) Create(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureWorkspace(workspaceID)

	now := time.Now().UTC()
	created := copyDisposition(d)
	if created.ID == "" {
		created.ID = types.NewDispositionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	r.dispositions[workspaceID][created.ID] = created
	return copyDisposition(created), nil
}

func (r *dispositionRepository) Get(ctx context.Context, workspaceID string, id types.DispositionID) (*model.Disposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.dispositions[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", id))
	}

	d, exists := ws[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", id))
	}

	return copyDisposition(d), nil
}

func (r *dispositionRepository) List(ctx context.Context, workspaceID string, includeInactive bool) ([]*model.Disposition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.dispositions[workspaceID]
	if !exists {
		return []*model.Disposition{}, nil
	}

	dispositions := make([]*model.Disposition, 0, len(ws))
	for _, d := range ws {
		if !d.Active && !includeInactive {
			continue
		}
		dispositions = append(dispositions, copyDisposition(d))
	}

	sort.Slice(dispositions, func(i, j int) bool {
		return dispositions[i].CreatedAt.After(dispositions[j].CreatedAt)
	})

	return dispositions, nil
}

func (r *dispositionRepository) Update(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.dispositions[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", d.ID))
	}

	existing, exists := ws[d.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", d.ID))
	}

	if existing.Rev != d.Rev {
		return nil, goerr.Wrap(interfaces.ErrRevisionMismatch, "disposition was modified concurrently",
			goerr.V("id", d.ID),
			goerr.V("expected_rev", d.Rev),
			goerr.V("stored_rev", existing.Rev))
	}

	updated := copyDisposition(d)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Rev = existing.Rev + 1

	r.dispositions[workspaceID][updated.ID] = updated
	return copyDisposition(updated), nil
}
