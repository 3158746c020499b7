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

// RequestUseCase coordinates multi-recipient requests. All state transitions go
// through the per-request lock so concurrent responses and progress updates
// serialize on one entity while unrelated requests proceed in parallel.
type RequestUseCase struct {
	repo      interfaces.Repository
	sink      interfaces.NotificationSink
	directory interfaces.UserDirectory
	locks     *keylock.KeyLock
}

func NewRequestUseCase(repo interfaces.Repository, sink interfaces.NotificationSink, directory interfaces.UserDirectory, locks *keylock.KeyLock) *RequestUseCase {
	return &RequestUseCase{
		repo:      repo,
		sink:      sink,
		directory: directory,
		locks:     locks,
	}
}

// CreateRequestInput carries the caller-supplied fields for a new request
type CreateRequestInput struct {
	Title       string
	Description string
	RequesterID types.UserID
	AssigneeIDs []types.UserID
	Priority    types.Priority
	Notes       string
}

func (uc *RequestUseCase) Create(ctx context.Context, workspaceID string, input CreateRequestInput) (*model.RequestTask, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "request title is required")
	}
	if len(input.AssigneeIDs) == 0 {
		return nil, goerr.Wrap(ErrValidation, "request needs at least one assignee")
	}
	seen := make(map[types.UserID]bool, len(input.AssigneeIDs))
	for _, id := range input.AssigneeIDs {
		if seen[id] {
			return nil, goerr.Wrap(ErrValidation, "duplicate assignee", goerr.V("user_id", id))
		}
		seen[id] = true
	}

	req := &model.RequestTask{
		Title:         input.Title,
		Description:   input.Description,
		RequesterID:   input.RequesterID,
		RequesterName: resolveName(ctx, uc.directory, workspaceID, input.RequesterID),
		AssigneeIDs:   input.AssigneeIDs,
		Status:        types.RequestStatusPending,
		Priority:      input.Priority.Normalize(),
		Notes:         input.Notes,
	}
	for _, id := range input.AssigneeIDs {
		name := resolveName(ctx, uc.directory, workspaceID, id)
		req.AssigneeNames = append(req.AssigneeNames, name)
		req.Responses = append(req.Responses, model.RequestResponse{
			UserID:   id,
			UserName: name,
			Decision: types.DecisionPending,
		})
	}

	created, err := uc.repo.Request().Create(ctx, workspaceID, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request")
	}

	for _, id := range created.AssigneeIDs {
		uc.emit(ctx, workspaceID, id, types.NotificationRequestCreated,
			"New request from "+created.RequesterName+": "+created.Title, string(created.ID))
	}

	return created, nil
}

func (uc *RequestUseCase) Get(ctx context.Context, workspaceID string, id types.RequestID) (*model.RequestTask, error) {
	req, err := uc.repo.Request().Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrRequestNotFound, "request not found", goerr.V("request_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get request", goerr.V("request_id", id))
	}
	return req, nil
}

func (uc *RequestUseCase) List(ctx context.Context, workspaceID string) ([]*model.RequestTask, error) {
	reqs, err := uc.repo.Request().List(ctx, workspaceID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requests")
	}
	return reqs, nil
}

func (uc *RequestUseCase) ListByAssignee(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.RequestTask, error) {
	reqs, err := uc.repo.Request().ListByAssignee(ctx, workspaceID, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list requests by assignee", goerr.V("user_id", userID))
	}
	return reqs, nil
}

// Respond records one recipient's accept or decline and rederives the composite
// status. Responding again with the same or a different decision updates the
// existing entry in place. A completed request no longer accepts decisions;
// reopening it goes through Hold.
func (uc *RequestUseCase) Respond(ctx context.Context, workspaceID string, id types.RequestID, userID types.UserID, decision types.ResponseDecision) (*model.RequestTask, error) {
	if !decision.IsAnswered() {
		return nil, goerr.Wrap(ErrValidation, "decision must be accepted or declined",
			goerr.V("decision", decision))
	}

	var before types.RequestStatus
	updated, err := uc.mutate(ctx, workspaceID, id, func(req *model.RequestTask, now time.Time) error {
		if req.Status == types.RequestStatusCompleted {
			return goerr.Wrap(ErrRequestCompleted, "cannot change a decision",
				goerr.V("request_id", id), goerr.V("user_id", userID))
		}
		before = req.Status
		return req.SetDecision(userID, decision, now)
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != before {
		switch updated.Status {
		case types.RequestStatusAccepted:
			uc.emit(ctx, workspaceID, updated.RequesterID, types.NotificationRequestAccepted,
				"All assignees accepted: "+updated.Title, string(updated.ID))
		case types.RequestStatusDeclined:
			uc.emit(ctx, workspaceID, updated.RequesterID, types.NotificationRequestDeclined,
				"Request declined: "+updated.Title, string(updated.ID))
		}
	}

	return updated, nil
}

// UpdateProgress moves the shared progress value. Only meaningful once the
// derived base status is accepted; reaching 100 completes the request.
func (uc *RequestUseCase) UpdateProgress(ctx context.Context, workspaceID string, id types.RequestID, progress int) (*model.RequestTask, error) {
	if progress < 0 || progress > 100 {
		return nil, goerr.Wrap(ErrValidation, "progress must be between 0 and 100",
			goerr.V("progress", progress))
	}

	var before types.RequestStatus
	updated, err := uc.mutate(ctx, workspaceID, id, func(req *model.RequestTask, now time.Time) error {
		before = req.Status
		if !req.Status.TracksProgress() {
			return goerr.Wrap(ErrProgressNotTracked, "cannot update progress",
				goerr.V("status", req.Status))
		}
		req.Progress = progress
		req.Recompute(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status == types.RequestStatusCompleted && before != types.RequestStatusCompleted {
		uc.emit(ctx, workspaceID, updated.RequesterID, types.NotificationRequestCompleted,
			"Request completed: "+updated.Title, string(updated.ID))
	}

	return updated, nil
}

// Hold is the requester's override that pulls a tracked request back to pending.
// Every response is reset along with the aggregate so the next derivation round
// starts from a clean slate.
func (uc *RequestUseCase) Hold(ctx context.Context, workspaceID string, id types.RequestID) (*model.RequestTask, error) {
	return uc.mutate(ctx, workspaceID, id, func(req *model.RequestTask, now time.Time) error {
		req.ResetResponses()
		return nil
	})
}

// Delete removes a request. Only pending requests may be deleted; anything
// already answered or tracking progress must be held first.
func (uc *RequestUseCase) Delete(ctx context.Context, workspaceID string, id types.RequestID) error {
	unlock := uc.locks.Lock(lockKey(workspaceID, id))
	defer unlock()

	req, err := uc.Get(ctx, workspaceID, id)
	if err != nil {
		return err
	}
	if req.Status != types.RequestStatusPending {
		return goerr.Wrap(ErrRequestNotPending, "cannot delete request",
			goerr.V("request_id", id),
			goerr.V("status", req.Status))
	}

	if err := uc.repo.Request().Delete(ctx, workspaceID, id); err != nil {
		return goerr.Wrap(err, "failed to delete request", goerr.V("request_id", id))
	}
	return nil
}

// mutate runs a read-modify-write cycle on one request, serialized per request ID
func (uc *RequestUseCase) mutate(ctx context.Context, workspaceID string, id types.RequestID, fn func(req *model.RequestTask, now time.Time) error) (*model.RequestTask, error) {
	unlock := uc.locks.Lock(lockKey(workspaceID, id))
	defer unlock()

	req, err := uc.Get(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	if err := fn(req, time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Request().Update(ctx, workspaceID, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update request", goerr.V("request_id", id))
	}
	return updated, nil
}

func lockKey(workspaceID string, id types.RequestID) string {
	return workspaceID + "/request/" + string(id)
}

func (uc *RequestUseCase) emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message, relatedID string) {
	if uc.sink != nil {
		uc.sink.Emit(ctx, workspaceID, userID, eventType, message, relatedID)
	}
}
