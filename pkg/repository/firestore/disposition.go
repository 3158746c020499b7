package firestore

import (
	"context"
	"sort"
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

type dispositionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newDispositionRepository(client *firestore.Client) *dispositionRepository {
	return &dispositionRepository{client: client}
}

func (r *dispositionRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "dispositions")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *dispositionRepository) Create(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error) {
	now := time.Now().UTC()

	created := *d
	if created.ID == "" {
		created.ID = types.NewDispositionID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	if _, err := r.col(workspaceID).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create disposition", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *dispositionRepository) Get(ctx context.Context, workspaceID string, id types.DispositionID) (*model.Disposition, error) {
	docSnap, err := r.col(workspaceID).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get disposition", goerr.V("id", id))
	}

	var d model.Disposition
	if err := docSnap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode disposition", goerr.V("id", id))
	}

	return &d, nil
}

func (r *dispositionRepository) List(ctx context.Context, workspaceID string, includeInactive bool) ([]*model.Disposition, error) {
	query := r.col(workspaceID).Query
	if !includeInactive {
		query = query.Where("Active", "==", true)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var dispositions []*model.Disposition
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate dispositions")
		}

		var d model.Disposition
		if err := docSnap.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode disposition", goerr.V("doc_id", docSnap.Ref.ID))
		}

		dispositions = append(dispositions, &d)
	}

	// Sorted client-side: avoids a composite index on Active+CreatedAt
	sort.Slice(dispositions, func(i, j int) bool {
		return dispositions[i].CreatedAt.After(dispositions[j].CreatedAt)
	})

	return dispositions, nil
}

func (r *dispositionRepository) Update(ctx context.Context, workspaceID string, d *model.Disposition) (*model.Disposition, error) {
	docRef := r.col(workspaceID).Doc(d.ID.String())

	updated := *d
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "disposition not found", goerr.V("id", d.ID))
			}
			return goerr.Wrap(err, "failed to get disposition", goerr.V("id", d.ID))
		}

		var existing model.Disposition
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode disposition", goerr.V("id", d.ID))
		}

		if existing.Rev != d.Rev {
			return goerr.Wrap(interfaces.ErrRevisionMismatch, "disposition was modified concurrently",
				goerr.V("id", d.ID),
				goerr.V("expected_rev", d.Rev),
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
