package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

func TestTask_ApplyStatus(t *testing.T) {
	now := time.Now().UTC()

	t.Run("completion forces progress and stamps CompletedAt", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusInProgress, Progress: 40}
		task.ApplyStatus(types.TaskStatusCompleted, now)

		gt.V(t, task.Status).Equal(types.TaskStatusCompleted)
		gt.V(t, task.Progress).Equal(100)
		gt.V(t, task.CompletedAt).NotNil()
	})

	t.Run("entering in-progress with zero progress bumps to visible minimum", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusAccepted, Progress: 0}
		task.ApplyStatus(types.TaskStatusInProgress, now)

		gt.V(t, task.Status).Equal(types.TaskStatusInProgress)
		gt.V(t, task.Progress).Equal(10)
	})

	t.Run("entering in-progress with existing progress keeps it", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusAccepted, Progress: 60}
		task.ApplyStatus(types.TaskStatusInProgress, now)
		gt.V(t, task.Progress).Equal(60)
	})

	t.Run("leaving revision-requested clears the reason", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusRevisionRequested, RevisionReason: "missing attachment"}
		task.ApplyStatus(types.TaskStatusAccepted, now)
		gt.V(t, task.RevisionReason).Equal("")
	})

	t.Run("leaving completed clears CompletedAt", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusPending}
		task.ApplyStatus(types.TaskStatusCompleted, now)
		gt.V(t, task.CompletedAt).NotNil()

		task.ApplyStatus(types.TaskStatusInProgress, now)
		gt.V(t, task.CompletedAt).Nil()
	})
}

func TestTask_ApplyProgress(t *testing.T) {
	now := time.Now().UTC()

	t.Run("progress 100 completes the task", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusInProgress, Progress: 70}
		task.ApplyProgress(100, now)

		gt.V(t, task.Status).Equal(types.TaskStatusCompleted)
		gt.V(t, task.CompletedAt).NotNil()
	})

	t.Run("nonzero progress moves accepted task to in-progress", func(t *testing.T) {
		task := &model.Task{Status: types.TaskStatusAccepted}
		task.ApplyProgress(30, now)

		gt.V(t, task.Status).Equal(types.TaskStatusInProgress)
		gt.V(t, task.Progress).Equal(30)
	})
}
