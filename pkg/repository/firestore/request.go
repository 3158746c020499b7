package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type requestRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newRequestRepository(client *firestore.Client) *requestRepository {
	return &requestRepository{client: client}
}

func (r *requestRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "requests")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *requestRepository) Create(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error) {
	now := time.Now().UTC()

	created := *req
	if created.ID == "" {
		created.ID = types.NewRequestID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	if _, err := r.col(workspaceID).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *requestRepository) Get(ctx context.Context, workspaceID string, id types.RequestID) (*model.RequestTask, error) {
	docSnap, err := r.col(workspaceID).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get request", goerr.V("id", id))
	}

	var req model.RequestTask
	if err := docSnap.DataTo(&req); err != nil {
		return nil, goerr.Wrap(err, "failed to decode request", goerr.V("id", id))
	}

	return &req, nil
}

func (r *requestRepository) List(ctx context.Context, workspaceID string) ([]*model.RequestTask, error) {
	iter := r.col(workspaceID).OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var requests []*model.RequestTask
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate requests")
		}

		var req model.RequestTask
		if err := docSnap.DataTo(&req); err != nil {
			return nil, goerr.Wrap(err, "failed to decode request", goerr.V("doc_id", docSnap.Ref.ID))
		}

		requests = append(requests, &req)
	}

	return requests, nil
}

func (r *requestRepository) ListByAssignee(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.RequestTask, error) {
	iter := r.col(workspaceID).
		Where("AssigneeIDs", "array-contains", userID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var requests []*model.RequestTask
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate requests", goerr.V("user_id", userID))
		}

		var req model.RequestTask
		if err := docSnap.DataTo(&req); err != nil {
			return nil, goerr.Wrap(err, "failed to decode request", goerr.V("doc_id", docSnap.Ref.ID))
		}

		requests = append(requests, &req)
	}

	return requests, nil
}

func (r *requestRepository) Update(ctx context.Context, workspaceID string, req *model.RequestTask) (*model.RequestTask, error) {
	docRef := r.col(workspaceID).Doc(req.ID.String())

	updated := *req
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", req.ID))
			}
			return goerr.Wrap(err, "failed to get request", goerr.V("id", req.ID))
		}

		var existing model.RequestTask
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode request", goerr.V("id", req.ID))
		}

		if existing.Rev != req.Rev {
			return goerr.Wrap(interfaces.ErrRevisionMismatch, "request was modified concurrently",
				goerr.V("id", req.ID),
				goerr.V("expected_rev", req.Rev),
				goerr.V("stored_rev", existing.Rev))
		}

		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		updated.Rev = existing.Rev + 1

		return tx.Set(docRef, &updated)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *requestRepository) Delete(ctx context.Context, workspaceID string, id types.RequestID) error {
	docRef := r.col(workspaceID).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "request not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get request", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete request", goerr.V("id", id))
	}

	return nil
}
