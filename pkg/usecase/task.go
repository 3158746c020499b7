package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/utils/keylock"
)

type TaskUseCase struct {
	repo      interfaces.Repository
	sink      interfaces.NotificationSink
	directory interfaces.UserDirectory
	locks     *keylock.KeyLock
}

func NewTaskUseCase(repo interfaces.Repository, sink interfaces.NotificationSink, directory interfaces.UserDirectory, locks *keylock.KeyLock) *TaskUseCase {
	return &TaskUseCase{
		repo:      repo,
		sink:      sink,
		directory: directory,
		locks:     locks,
	}
}

// CreateTaskInput carries the caller-supplied fields for a new task
type CreateTaskInput struct {
	Title       string
	Description string
	SenderID    types.UserID
	ReceiverID  types.UserID
	Deadline    time.Time
	Priority    types.Priority
	Notes       string
}

func (uc *TaskUseCase) Create(ctx context.Context, workspaceID string, input CreateTaskInput) (*model.Task, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "task title is required")
	}
	if input.Description == "" {
		return nil, goerr.Wrap(ErrValidation, "task description is required")
	}
	if input.ReceiverID == "" {
		return nil, goerr.Wrap(ErrValidation, "task receiver is required")
	}
	if input.Deadline.IsZero() {
		return nil, goerr.Wrap(ErrValidation, "task deadline is required")
	}

	task := &model.Task{
		Title:        input.Title,
		Description:  input.Description,
		SenderID:     input.SenderID,
		SenderName:   uc.resolveName(ctx, workspaceID, input.SenderID),
		ReceiverID:   input.ReceiverID,
		ReceiverName: uc.resolveName(ctx, workspaceID, input.ReceiverID),
		Deadline:     input.Deadline,
		Priority:     input.Priority.Normalize(),
		Status:       types.TaskStatusPending,
		Notes:        input.Notes,
	}

	created, err := uc.repo.Task().Create(ctx, workspaceID, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create task")
	}

	uc.emit(ctx, workspaceID, created.ReceiverID, types.NotificationTaskAssigned,
		"New task assigned: "+created.Title, string(created.ID))

	return created, nil
}

func (uc *TaskUseCase) Get(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error) {
	task, err := uc.repo.Task().Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V("task_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("task_id", id))
	}
	return task, nil
}

func (uc *TaskUseCase) List(ctx context.Context, workspaceID string) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().List(ctx, workspaceID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks")
	}
	return tasks, nil
}

func (uc *TaskUseCase) ListByReceiver(ctx context.Context, workspaceID string, receiverID types.UserID) ([]*model.Task, error) {
	tasks, err := uc.repo.Task().ListByReceiver(ctx, workspaceID, receiverID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tasks by receiver", goerr.V("receiver_id", receiverID))
	}
	return tasks, nil
}

// Accept moves a pending or revision-requested task to accepted and clears any
// stored revision reason.
func (uc *TaskUseCase) Accept(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error) {
	return uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		if task.Status != types.TaskStatusPending && task.Status != types.TaskStatusRevisionRequested {
			return goerr.Wrap(ErrValidation, "task cannot be accepted in its current status",
				goerr.V("status", task.Status))
		}
		task.ApplyStatus(types.TaskStatusAccepted, now)
		return nil
	})
}

// Decline moves a pending task to declined. Declined is terminal.
func (uc *TaskUseCase) Decline(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error) {
	return uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		if task.Status != types.TaskStatusPending {
			return goerr.Wrap(ErrValidation, "only pending tasks can be declined",
				goerr.V("status", task.Status))
		}
		task.ApplyStatus(types.TaskStatusDeclined, now)
		return nil
	})
}

// RequestRevision puts a task into revision-requested with the given reason
func (uc *TaskUseCase) RequestRevision(ctx context.Context, workspaceID string, id types.TaskID, reason string) (*model.Task, error) {
	if reason == "" {
		return nil, goerr.Wrap(ErrValidation, "revision reason is required")
	}

	updated, err := uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		if task.Status.IsTerminal() {
			return goerr.Wrap(ErrTaskTerminal, "cannot request revision",
				goerr.V("status", task.Status))
		}
		task.ApplyStatus(types.TaskStatusRevisionRequested, now)
		task.RevisionReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.emit(ctx, workspaceID, updated.ReceiverID, types.NotificationTaskRevision,
		"Revision requested: "+updated.Title, string(updated.ID))

	return updated, nil
}

// UpdateStatus is the manual override: any valid status may be written directly,
// with the coupled progress and timestamp rules applied.
func (uc *TaskUseCase) UpdateStatus(ctx context.Context, workspaceID string, id types.TaskID, status types.TaskStatus) (*model.Task, error) {
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid task status", goerr.V("status", status))
	}

	return uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		task.ApplyStatus(status, now)
		return nil
	})
}

func (uc *TaskUseCase) UpdateProgress(ctx context.Context, workspaceID string, id types.TaskID, progress int) (*model.Task, error) {
	if progress < 0 || progress > 100 {
		return nil, goerr.Wrap(ErrValidation, "progress must be between 0 and 100",
			goerr.V("progress", progress))
	}

	return uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		task.ApplyProgress(progress, now)
		return nil
	})
}

// UpdateTaskInput carries optional field patches; nil means leave unchanged
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Priority    *types.Priority
	Notes       *string
}

func (uc *TaskUseCase) Update(ctx context.Context, workspaceID string, id types.TaskID, input UpdateTaskInput) (*model.Task, error) {
	if input.Title != nil && *input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "task title cannot be empty")
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid priority", goerr.V("priority", *input.Priority))
	}

	return uc.mutate(ctx, workspaceID, id, func(task *model.Task, now time.Time) error {
		if input.Title != nil {
			task.Title = *input.Title
		}
		if input.Description != nil {
			task.Description = *input.Description
		}
		if input.Deadline != nil {
			task.Deadline = *input.Deadline
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}
		if input.Notes != nil {
			task.Notes = *input.Notes
		}
		return nil
	})
}

func (uc *TaskUseCase) Delete(ctx context.Context, workspaceID string, id types.TaskID) error {
	if err := uc.repo.Task().Delete(ctx, workspaceID, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrTaskNotFound, "task not found", goerr.V("task_id", id))
		}
		return goerr.Wrap(err, "failed to delete task", goerr.V("task_id", id))
	}
	return nil
}

// mutate runs a read-modify-write cycle on one task, serialized per task ID
func (uc *TaskUseCase) mutate(ctx context.Context, workspaceID string, id types.TaskID, fn func(task *model.Task, now time.Time) error) (*model.Task, error) {
	unlock := uc.locks.Lock(workspaceID + "/task/" + string(id))
	defer unlock()

	task, err := uc.Get(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	if err := fn(task, time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Task().Update(ctx, workspaceID, task)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update task", goerr.V("task_id", id))
	}
	return updated, nil
}

func (uc *TaskUseCase) resolveName(ctx context.Context, workspaceID string, id types.UserID) string {
	return resolveName(ctx, uc.directory, workspaceID, id)
}

func (uc *TaskUseCase) emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message, relatedID string) {
	if uc.sink != nil {
		uc.sink.Emit(ctx, workspaceID, userID, eventType, message, relatedID)
	}
}
