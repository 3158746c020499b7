package model

import (
	"time"

	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// Task represents a unit of work assigned by one sender to exactly one receiver
type Task struct {
	ID             types.TaskID
	Title          string
	Description    string
	SenderID       types.UserID
	SenderName     string
	ReceiverID     types.UserID
	ReceiverName   string
	Deadline       time.Time
	Priority       types.Priority
	Status         types.TaskStatus
	Progress       int // 0..100
	Notes          string
	RevisionReason string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
	Rev            int64
}

// minVisibleProgress is the progress value a task is bumped to when it enters
// in-progress with zero recorded progress, so movement is visible to the sender.
const minVisibleProgress = 10

// ApplyStatus overwrites the task status and applies the coupled field rules:
// completion forces progress to 100 and stamps CompletedAt, entering in-progress
// with zero progress bumps it to a minimum visible value, and leaving
// revision-requested clears the stored reason.
func (t *Task) ApplyStatus(status types.TaskStatus, now time.Time) {
	t.Status = status

	switch status {
	case types.TaskStatusCompleted:
		t.Progress = 100
		if t.CompletedAt == nil {
			completedAt := now
			t.CompletedAt = &completedAt
		}
	case types.TaskStatusInProgress:
		if t.Progress == 0 {
			t.Progress = minVisibleProgress
		}
	}

	if status != types.TaskStatusRevisionRequested {
		t.RevisionReason = ""
	}
	if status != types.TaskStatusCompleted {
		t.CompletedAt = nil
	}
}

// ApplyProgress sets the progress and derives the coupled status transition:
// reaching 100 completes the task.
func (t *Task) ApplyProgress(progress int, now time.Time) {
	t.Progress = progress
	if progress >= 100 {
		t.ApplyStatus(types.TaskStatusCompleted, now)
	} else if progress > 0 && t.Status == types.TaskStatusAccepted {
		t.Status = types.TaskStatusInProgress
	}
}
