package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// RequestResponse holds one recipient's answer to a request. A request carries
// exactly one entry per assignee, in assignee selection order.
type RequestResponse struct {
	UserID      types.UserID
	UserName    string
	Decision    types.ResponseDecision
	RespondedAt *time.Time
}

// RequestTask represents a unit of work offered by one requester to one or more
// recipients, each of whom must individually accept or decline. The Status field
// is a composite: the pending/accepted/declined axis is always recomputed from
// Responses via Recompute, never written directly; the in-progress/completed axis
// is driven by Progress once the derived base is accepted.
type RequestTask struct {
	ID            types.RequestID
	Title         string
	Description   string
	RequesterID   types.UserID
	RequesterName string
	AssigneeIDs   []types.UserID
	AssigneeNames []string
	Responses     []RequestResponse
	Status        types.RequestStatus
	Progress      int // 0..100, shared across all accepters
	Priority      types.Priority
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AcceptedAt    *time.Time
	CompletedAt   *time.Time
	Rev           int64
}

var (
	ErrNotAssignee      = goerr.New("user is not an assignee of the request")
	ErrResponsesDiverge = goerr.New("responses do not match assignee list")
)

// DeriveBaseStatus maps a response set to the accept/decline axis of the
// request status. Evaluated in order: any decline dominates, then unanimous
// acceptance, otherwise the request is still pending.
func DeriveBaseStatus(responses []RequestResponse) types.RequestStatus {
	allAccepted := len(responses) > 0
	for _, resp := range responses {
		if resp.Decision == types.DecisionDeclined {
			return types.RequestStatusDeclined
		}
		if resp.Decision != types.DecisionAccepted {
			allAccepted = false
		}
	}
	if allAccepted {
		return types.RequestStatusAccepted
	}
	return types.RequestStatusPending
}

// Recompute rederives the composite status from the response set and the shared
// progress value. It stamps AcceptedAt on the first transition into the accepted
// base and CompletedAt when progress completes the request.
func (r *RequestTask) Recompute(now time.Time) {
	switch DeriveBaseStatus(r.Responses) {
	case types.RequestStatusDeclined:
		r.Status = types.RequestStatusDeclined
	case types.RequestStatusAccepted:
		if r.AcceptedAt == nil {
			acceptedAt := now
			r.AcceptedAt = &acceptedAt
		}
		switch {
		case r.Progress >= 100:
			r.Status = types.RequestStatusCompleted
			if r.CompletedAt == nil {
				completedAt := now
				r.CompletedAt = &completedAt
			}
		case r.Progress > 0:
			r.Status = types.RequestStatusInProgress
		default:
			r.Status = types.RequestStatusAccepted
		}
	default:
		r.Status = types.RequestStatusPending
	}
}

// Response returns the response entry for the given user, or nil if the user is
// not an assignee.
func (r *RequestTask) Response(userID types.UserID) *RequestResponse {
	for i := range r.Responses {
		if r.Responses[i].UserID == userID {
			return &r.Responses[i]
		}
	}
	return nil
}

// SetDecision records one recipient's decision and rederives the composite
// status. Calling it again with the same decision is idempotent apart from the
// response timestamp; the response entry is updated in place, never duplicated.
func (r *RequestTask) SetDecision(userID types.UserID, decision types.ResponseDecision, now time.Time) error {
	resp := r.Response(userID)
	if resp == nil {
		return goerr.Wrap(ErrNotAssignee, "cannot respond to request", goerr.V("user_id", userID))
	}

	resp.Decision = decision
	respondedAt := now
	resp.RespondedAt = &respondedAt

	r.Recompute(now)
	return nil
}

// ResetResponses puts every response back to pending and clears the progress
// axis. Used by the hold override: the reference implementation reset only the
// aggregate status, which could re-admit a stale decline into the next
// derivation round.
func (r *RequestTask) ResetResponses() {
	for i := range r.Responses {
		r.Responses[i].Decision = types.DecisionPending
		r.Responses[i].RespondedAt = nil
	}
	r.Progress = 0
	r.AcceptedAt = nil
	r.CompletedAt = nil
	r.Status = types.RequestStatusPending
}

// ValidateResponses checks the structural invariant: one response per assignee,
// same order, matching user IDs.
func (r *RequestTask) ValidateResponses() error {
	if len(r.Responses) != len(r.AssigneeIDs) {
		return goerr.Wrap(ErrResponsesDiverge, "response count mismatch",
			goerr.V("responses", len(r.Responses)),
			goerr.V("assignees", len(r.AssigneeIDs)))
	}
	for i, id := range r.AssigneeIDs {
		if r.Responses[i].UserID != id {
			return goerr.Wrap(ErrResponsesDiverge, "response order mismatch",
				goerr.V("index", i),
				goerr.V("assignee_id", id),
				goerr.V("response_user_id", r.Responses[i].UserID))
		}
	}
	return nil
}
