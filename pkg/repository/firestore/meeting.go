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

type meetingRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMeetingRepository(client *firestore.Client) *meetingRepository {
	return &meetingRepository{client: client}
}

func (r *meetingRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "meetings")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *meetingRepository) Create(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error) {
	now := time.Now().UTC()

	created := *m
	if created.ID == "" {
		created.ID = types.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	if _, err := r.col(workspaceID).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create meeting", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *meetingRepository) Get(ctx context.Context, workspaceID string, id types.MeetingID) (*model.Meeting, error) {
	docSnap, err := r.col(workspaceID).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get meeting", goerr.V("id", id))
	}

	var m model.Meeting
	if err := docSnap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode meeting", goerr.V("id", id))
	}

	return &m, nil
}

func (r *meetingRepository) List(ctx context.Context, workspaceID string) ([]*model.Meeting, error) {
	iter := r.col(workspaceID).OrderBy("StartTime", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var meetings []*model.Meeting
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate meetings")
		}

		var m model.Meeting
		if err := docSnap.DataTo(&m); err != nil {
			return nil, goerr.Wrap(err, "failed to decode meeting", goerr.V("doc_id", docSnap.Ref.ID))
		}

		meetings = append(meetings, &m)
	}

	return meetings, nil
}

func (r *meetingRepository) Update(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error) {
	docRef := r.col(workspaceID).Doc(m.ID.String())

	updated := *m
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", m.ID))
			}
			return goerr.Wrap(err, "failed to get meeting", goerr.V("id", m.ID))
		}

		var existing model.Meeting
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode meeting", goerr.V("id", m.ID))
		}

		if existing.Rev != m.Rev {
			return goerr.Wrap(interfaces.ErrRevisionMismatch, "meeting was modified concurrently",
				goerr.V("id", m.ID),
				goerr.V("expected_rev", m.Rev),
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

func (r *meetingRepository) Delete(ctx context.Context, workspaceID string, id types.MeetingID) error {
	docRef := r.col(workspaceID).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get meeting", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete meeting", goerr.V("id", id))
	}

	return nil
}
