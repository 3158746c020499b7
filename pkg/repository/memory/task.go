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

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[string]map[types.TaskID]*model.Task
}

func newTaskRepository() *taskRepository {
	return &taskRepository{
		tasks: make(map[string]map[types.TaskID]*model.Task),
	}
}

func (r *taskRepository) ensureWorkspace(workspaceID string) {
	if _, exists := r.tasks[workspaceID]; !exists {
		r.tasks[workspaceID] = make(map[types.TaskID]*model.Task)
	}
}

// copyTask creates a deep copy of a task
func copyTask(t *model.Task) *model.Task {
	copied := *t
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		copied.CompletedAt = &completedAt
	}
	return &copied
}

func (r *taskRepository) Create(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureWorkspace(workspaceID)

	now := time.Now().UTC()
	created := copyTask(task)
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	r.tasks[workspaceID][created.ID] = created
	return copyTask(created), nil
}

func (r *taskRepository) Get(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.tasks[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
	}

	task, exists := ws[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
	}

	return copyTask(task), nil
}

func (r *taskRepository) List(ctx context.Context, workspaceID string) ([]*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.tasks[workspaceID]
	if !exists {
		return []*model.Task{}, nil
	}

	tasks := make([]*model.Task, 0, len(ws))
	for _, t := range ws {
		tasks = append(tasks, copyTask(t))
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

func (r *taskRepository) ListByReceiver(ctx context.Context, workspaceID string, receiverID types.UserID) ([]*model.Task, error) {
	all, err := r.List(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	tasks := make([]*model.Task, 0, len(all))
	for _, t := range all {
		if t.ReceiverID == receiverID {
			tasks = append(tasks, t)
		}
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.tasks[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	existing, exists := ws[task.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", task.ID))
	}

	if existing.Rev != task.Rev {
		return nil, goerr.Wrap(interfaces.ErrRevisionMismatch, "task was modified concurrently",
			goerr.V("id", task.ID),
			goerr.V("expected_rev", task.Rev),
			goerr.V("stored_rev", existing.Rev))
	}

	updated := copyTask(task)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Rev = existing.Rev + 1

	r.tasks[workspaceID][updated.ID] = updated
	return copyTask(updated), nil
}

func (r *taskRepository) Delete(ctx context.Context, workspaceID string, id types.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.tasks[workspaceID]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
	}

	if _, exists := ws[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
	}

	delete(r.tasks[workspaceID], id)
	return nil
}
