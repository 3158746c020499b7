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

type notificationRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newNotificationRepository(client *firestore.Client) *notificationRepository {
	return &notificationRepository{client: client}
}

func (r *notificationRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "notifications")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *notificationRepository) Create(ctx context.Context, workspaceID string, n *model.Notification) (*model.Notification, error) {
	created := *n
	if created.ID == "" {
		created.ID = types.NewNotificationID()
	}
	created.CreatedAt = time.Now().UTC()

	if _, err := r.col(workspaceID).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create notification", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, workspaceID string, userID types.UserID) ([]*model.Notification, error) {
	// Requires the composite index on UserID+Read+CreatedAt (see migrate command)
	iter := r.col(workspaceID).
		Where("UserID", "==", userID.String()).
		OrderBy("Read", firestore.Asc).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*model.Notification
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications", goerr.V("user_id", userID))
		}

		var n model.Notification
		if err := docSnap.DataTo(&n); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification", goerr.V("doc_id", docSnap.Ref.ID))
		}

		notifications = append(notifications, &n)
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, workspaceID string, id types.NotificationID) error {
	docRef := r.col(workspaceID).Doc(id.String())

	_, err := docRef.Update(ctx, []firestore.Update{
		{Path: "Read", Value: true},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "notification not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to mark notification read", goerr.V("id", id))
	}

	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, workspaceID string, userID types.UserID) error {
	iter := r.col(workspaceID).
		Where("UserID", "==", userID.String()).
		Where("Read", "==", false).
		Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate notifications", goerr.V("user_id", userID))
		}

		if _, err := bw.Update(docSnap.Ref, []firestore.Update{
			{Path: "Read", Value: true},
		}); err != nil {
			return goerr.Wrap(err, "failed to enqueue notification update", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	bw.End()

	return nil
}
