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

type requestRepository struct {
	mu       sync.RWMutex
	requests map[string]map[types.RequestID]*model.RequestTask
}

func newRequestRepository() *requestRepository {
	return &requestRepository{
		requests: make(map[string]map[types.RequestID]*model.RequestTask),
	}
}

func (r *requestRepository) ensureWorkspace(workspaceID string) {
	if _, exists := r.requests[workspaceID]; !exists {
		r.requests[workspaceID] = make(map[types.RequestID]*model.RequestTask)
	}
}

// copyRequest creates a deep copy of a request
func copyRequest(req *model.RequestTask) *model.RequestTask {
	copied := *req

	copied.AssigneeIDs = make([]types.UserID, len(req.AssigneeIDs))
	copy(copied.AssigneeIDs, req.AssigneeIDs)

	copied.AssigneeNames = make([]string, len(req.AssigneeNames))
	copy(copied.AssigneeNames, req.AssigneeNames)

	copied.Responses = make([]model.RequestResponse, len(req.Responses))
	for i, resp := range req.Responses {
		copied.Responses[i] = resp
		if resp.RespondedAt != nil {
			respondedAt := *resp.RespondedAt
			copied.Responses[i].RespondedAt = &respondedAt
		}
	}

	if req.AcceptedAt != nil {
		acceptedAt := *req.AcceptedAt
		copied.AcceptedAt = &acceptedAt
	}
	if req.CompletedAt != nil {
		completedAt := *req.CompletedAt
		copied.CompletedAt = &completedAt
	}

	return &copied
}

func (r *requestRepository) Create(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureWorkspace(workspaceID)

	now := time.Now().UTC()
	created := copyRequest(req)
	if created.ID == "" {
		created.ID = types.NewRequestID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	r.requests[workspaceID][created.ID] = created
	return copyRequest(created), nil
}

func (r *requestRepository) Get(ctx context.Context, workspaceID string, id types.RequestID) (*model.RequestTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.requests[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
	}

	req, exists := ws[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
	}

	return copyRequest(req), nil
}

func (r *requestRepository) List(ctx context.Context, workspaceID string) ([]*model.RequestTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.requests[workspaceID]
	if !exists {
		return []*model.RequestTask{}, nil
	}

	requests := make([]*model.RequestTask, 0, len(ws))
	for _, req := range ws {
		requests = append(requests, copyRequest(req))
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})

	return requests, nil
}

func (r *requestRepository) ListByAssignee(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.RequestTask, error) {
	all, err := r.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	requests := make([]*model.RequestTask, 0, len(all))
	for _, req := range all {
		for _, id := range req.AssigneeIDs {
			if id == userID {
				requests = append(requests, req)
				break
			}
		}
	}

	return requests, nil
}

func (r *requestRepository) Update(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.requests[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", req.ID))
	}

	existing, exists := ws[req.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", req.ID))
	}

	if existing.Rev != req.Rev {
		return nil, goerr.Wrap(interfaces.ErrRevisionMismatch, "request was modified concurrently",
			goerr.V("id", req.ID),
			goerr.V("expected_rev", req.Rev),
			goerr.V("stored_rev", existing.Rev))
	}

	updated := copyRequest(req)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Rev = existing.Rev + 1

	r.requests[workspaceID][updated.ID] = updated
	return copyRequest(updated), nil
}

func (r *requestRepository) Delete(ctx context.Context, workspaceID string, id types.RequestID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.requests[workspaceID]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
	}

	if _, exists := ws[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
	}

	delete(r.requests[workspaceID], id)
	return nil
}
