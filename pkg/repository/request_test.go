package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

func sampleRequest(assignees ...types.UserID) *model.RequestTask {
	req := &model.RequestTask{
		Title:       "Review security checklist",
		RequesterID: "U-REQ",
		AssigneeIDs: assignees,
		Status:      types.RequestStatusPending,
		Priority:    types.PriorityMedium,
	}
	for _, id := range assignees {
		req.AssigneeNames = append(req.AssigneeNames, string(id))
		req.Responses = append(req.Responses, model.RequestResponse{
			UserID:   id,
			UserName: string(id),
			Decision: types.DecisionPending,
		})
	}
	return req
}

func runRequestRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create preserves response order", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Request().Create(ctx, wsID, sampleRequest("U3", "U1", "U2"))
		gt.NoError(t, err).Required()

		retrieved, err := repo.Request().Get(ctx, wsID, created.ID)
		gt.NoError(t, err).Required()

		gt.A(t, retrieved.Responses).Length(3)
		gt.V(t, retrieved.Responses[0].UserID).Equal(types.UserID("U3"))
		gt.V(t, retrieved.Responses[1].UserID).Equal(types.UserID("U1"))
		gt.V(t, retrieved.Responses[2].UserID).Equal(types.UserID("U2"))
		gt.NoError(t, retrieved.ValidateResponses())
	})

	t.Run("Update round-trips decisions and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Request().Create(ctx, wsID, sampleRequest("U1", "U2"))
		gt.NoError(t, err).Required()

		now := time.Now().UTC()
		gt.NoError(t, created.SetDecision("U1", types.DecisionAccepted, now))

		updated, err := repo.Request().Update(ctx, wsID, created)
		gt.NoError(t, err).Required()

		retrieved, err := repo.Request().Get(ctx, wsID, updated.ID)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved.Responses[0].Decision).Equal(types.DecisionAccepted)
		gt.V(t, retrieved.Responses[0].RespondedAt).NotNil()
		gt.V(t, retrieved.Responses[1].Decision).Equal(types.DecisionPending)
		gt.V(t, retrieved.Status).Equal(types.RequestStatusPending)
	})

	t.Run("Update enforces revision CAS", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Request().Create(ctx, wsID, sampleRequest("U1"))
		gt.NoError(t, err).Required()

		first := *created
		_, err = repo.Request().Update(ctx, wsID, &first)
		gt.NoError(t, err).Required()

		stale := *created
		_, err = repo.Request().Update(ctx, wsID, &stale)
		gt.Error(t, err).Is(interfaces.ErrRevisionMismatch)
	})

	t.Run("ListByAssignee matches any assignee", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		ws := uniqueWS()

		_, err := repo.Request().Create(ctx, ws, sampleRequest("U1", "U2"))
		gt.NoError(t, err).Required()
		_, err = repo.Request().Create(ctx, ws, sampleRequest("U2", "U3"))
		gt.NoError(t, err).Required()
		_, err = repo.Request().Create(ctx, ws, sampleRequest("U3"))
		gt.NoError(t, err).Required()

		mine, err := repo.Request().ListByAssignee(ctx, ws, "U2")
		gt.NoError(t, err).Required()
		gt.A(t, mine).Length(2)
	})

	t.Run("Delete removes request", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Request().Create(ctx, wsID, sampleRequest("U1"))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Request().Delete(ctx, wsID, created.ID))

		_, err = repo.Request().Get(ctx, wsID, created.ID)
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestRequestRepository_Memory(t *testing.T) {
	runRequestRepositoryTest(t, newMemoryRepo)
}

func TestRequestRepository_Firestore(t *testing.T) {
	runRequestRepositoryTest(t, newFirestoreRepo)
}
