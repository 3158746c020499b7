package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func createTask(t *testing.T, uc *usecase.UseCases) types.TaskID {
	t.Helper()
	created, err := uc.Task.Create(context.Background(), wsID, usecase.CreateTaskInput{
		Title:       "Draft incident summary",
		Description: "Summarize last week's incident for the weekly report",
		SenderID:    "U-SND",
		ReceiverID:  "U-RCV",
		Deadline:    time.Now().UTC().Add(48 * time.Hour),
	})
	gt.NoError(t, err).Required()
	return created.ID
}

func TestTaskCreate(t *testing.T) {
	uc, sink := newUseCases(t)
	ctx := context.Background()

	t.Run("required fields", func(t *testing.T) {
		_, err := uc.Task.Create(ctx, wsID, usecase.CreateTaskInput{
			Description: "d",
			ReceiverID:  "U-RCV",
			Deadline:    time.Now().Add(time.Hour),
		})
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Task.Create(ctx, wsID, usecase.CreateTaskInput{
			Title:      "x",
			ReceiverID: "U-RCV",
			Deadline:   time.Now().Add(time.Hour),
		})
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Task.Create(ctx, wsID, usecase.CreateTaskInput{
			Title:       "x",
			Description: "d",
			Deadline:    time.Now().Add(time.Hour),
		})
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Task.Create(ctx, wsID, usecase.CreateTaskInput{
			Title:       "x",
			Description: "d",
			ReceiverID:  "U-RCV",
		})
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("defaults and notification", func(t *testing.T) {
		created, err := uc.Task.Create(ctx, wsID, usecase.CreateTaskInput{
			Title:       "Draft incident summary",
			Description: "Summarize last week's incident for the weekly report",
			SenderID:    "U-SND",
			ReceiverID:  "U-RCV",
			Deadline:    time.Now().UTC().Add(48 * time.Hour),
		})
		gt.NoError(t, err).Required()

		gt.V(t, created.Status).Equal(types.TaskStatusPending)
		gt.N(t, created.Progress).Equal(0)
		gt.V(t, created.Priority).Equal(types.PriorityMedium)

		events := sink.EventsFor("U-RCV")
		gt.A(t, events).Length(1)
		gt.V(t, events[0].Type).Equal(types.NotificationTaskAssigned)
		gt.V(t, events[0].RelatedID).Equal(string(created.ID))
	})
}

func TestTaskAcceptDecline(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	t.Run("accept from pending", func(t *testing.T) {
		id := createTask(t, uc)
		accepted, err := uc.Task.Accept(ctx, wsID, id)
		gt.NoError(t, err).Required()
		gt.V(t, accepted.Status).Equal(types.TaskStatusAccepted)
	})

	t.Run("decline is terminal", func(t *testing.T) {
		id := createTask(t, uc)
		declined, err := uc.Task.Decline(ctx, wsID, id)
		gt.NoError(t, err).Required()
		gt.V(t, declined.Status).Equal(types.TaskStatusDeclined)

		_, err = uc.Task.Accept(ctx, wsID, id)
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("decline requires pending", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.Accept(ctx, wsID, id)
		gt.NoError(t, err).Required()

		_, err = uc.Task.Decline(ctx, wsID, id)
		gt.Error(t, err).Is(usecase.ErrValidation)
	})
}

func TestTaskRequestRevision(t *testing.T) {
	uc, sink := newUseCases(t)
	ctx := context.Background()

	t.Run("empty reason rejected", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.RequestRevision(ctx, wsID, id, "")
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("revision and re-accept clears reason", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.Accept(ctx, wsID, id)
		gt.NoError(t, err).Required()

		revised, err := uc.Task.RequestRevision(ctx, wsID, id, "missing timeline section")
		gt.NoError(t, err).Required()
		gt.V(t, revised.Status).Equal(types.TaskStatusRevisionRequested)
		gt.V(t, revised.RevisionReason).Equal("missing timeline section")

		events := sink.EventsFor("U-RCV")
		gt.V(t, events[len(events)-1].Type).Equal(types.NotificationTaskRevision)

		accepted, err := uc.Task.Accept(ctx, wsID, id)
		gt.NoError(t, err).Required()
		gt.V(t, accepted.RevisionReason).Equal("")
	})

	t.Run("terminal task rejected", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.Decline(ctx, wsID, id)
		gt.NoError(t, err).Required()

		_, err = uc.Task.RequestRevision(ctx, wsID, id, "reason")
		gt.Error(t, err).Is(usecase.ErrTaskTerminal)
	})
}

func TestTaskProgress(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	t.Run("out of range rejected", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.UpdateProgress(ctx, wsID, id, 120)
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("full progress completes", func(t *testing.T) {
		id := createTask(t, uc)
		_, err := uc.Task.Accept(ctx, wsID, id)
		gt.NoError(t, err).Required()

		half, err := uc.Task.UpdateProgress(ctx, wsID, id, 50)
		gt.NoError(t, err).Required()
		gt.V(t, half.Status).Equal(types.TaskStatusInProgress)

		done, err := uc.Task.UpdateProgress(ctx, wsID, id, 100)
		gt.NoError(t, err).Required()
		gt.V(t, done.Status).Equal(types.TaskStatusCompleted)
		gt.V(t, done.CompletedAt).NotNil()
	})

	t.Run("manual in-progress bumps zero progress", func(t *testing.T) {
		id := createTask(t, uc)
		updated, err := uc.Task.UpdateStatus(ctx, wsID, id, types.TaskStatusInProgress)
		gt.NoError(t, err).Required()
		gt.N(t, updated.Progress).Equal(10)
	})

	t.Run("manual completion forces progress", func(t *testing.T) {
		id := createTask(t, uc)
		updated, err := uc.Task.UpdateStatus(ctx, wsID, id, types.TaskStatusCompleted)
		gt.NoError(t, err).Required()
		gt.N(t, updated.Progress).Equal(100)
		gt.V(t, updated.CompletedAt).NotNil()
	})
}

func TestTaskUpdateAndDelete(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	t.Run("patch updates only provided fields", func(t *testing.T) {
		id := createTask(t, uc)
		title := "Redraft incident summary"
		priority := types.PriorityHigh
		updated, err := uc.Task.Update(ctx, wsID, id, usecase.UpdateTaskInput{
			Title:    &title,
			Priority: &priority,
		})
		gt.NoError(t, err).Required()
		gt.V(t, updated.Title).Equal(title)
		gt.V(t, updated.Priority).Equal(types.PriorityHigh)
		gt.V(t, updated.ReceiverID).Equal(types.UserID("U-RCV"))
	})

	t.Run("empty patched title rejected", func(t *testing.T) {
		id := createTask(t, uc)
		empty := ""
		_, err := uc.Task.Update(ctx, wsID, id, usecase.UpdateTaskInput{Title: &empty})
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("delete then get", func(t *testing.T) {
		id := createTask(t, uc)
		gt.NoError(t, uc.Task.Delete(ctx, wsID, id))

		_, err := uc.Task.Get(ctx, wsID, id)
		gt.Error(t, err).Is(usecase.ErrTaskNotFound)

		gt.Error(t, uc.Task.Delete(ctx, wsID, id)).Is(usecase.ErrTaskNotFound)
	})
}
