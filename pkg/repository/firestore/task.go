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

type taskRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newTaskRepository(client *firestore.Client) *taskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "tasks")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *taskRepository) Create(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error) {
	now := time.Now().UTC()

	created := *task
	if created.ID == "" {
		created.ID = types.NewTaskID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	if _, err := r.col(workspaceID).Doc(created.ID.String()).Set(ctx, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create task", goerr.V("id", created.ID))
	}

	return &created, nil
}

func (r *taskRepository) Get(ctx context.Context, workspaceID string, id types.TaskID) (*model.Task, error) {
	docSnap, err := r.col(workspaceID).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	var task model.Task
	if err := docSnap.DataTo(&task); err != nil {
		return nil, goerr.Wrap(err, "failed to decode task", goerr.V("id", id))
	}

	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, workspaceID string) ([]*model.Task, error) {
	iter := r.col(workspaceID).OrderBy("CreatedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var tasks []*model.Task
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks")
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		tasks = append(tasks, &task)
	}

	return tasks, nil
}

func (r *taskRepository) ListByReceiver(ctx context.Context, workspaceID string, receiverID types.UserID) ([]*model.Task, error) {
	iter := r.col(workspaceID).
		Where("ReceiverID", "==", receiverID.String()).
		OrderBy("CreatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var tasks []*model.Task
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate tasks", goerr.V("receiver_id", receiverID))
		}

		var task model.Task
		if err := docSnap.DataTo(&task); err != nil {
			return nil, goerr.Wrap(err, "failed to decode task", goerr.V("doc_id", docSnap.Ref.ID))
		}

		tasks = append(tasks, &task)
	}

	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, workspaceID string, task *model.Task) (*model.Task, error) {
	docRef := r.col(workspaceID).Doc(task.ID.String())

	updated := *task
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docSnap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", task.ID))
			}
			return goerr.Wrap(err, "failed to get task", goerr.V("id", task.ID))
		}

		var existing model.Task
		if err := docSnap.DataTo(&existing); err != nil {
			return goerr.Wrap(err, "failed to decode task", goerr.V("id", task.ID))
		}

		if existing.Rev != task.Rev {
			return goerr.Wrap(interfaces.ErrRevisionMismatch, "task was modified concurrently",
				goerr.V("id", task.ID),
				goerr.V("expected_rev", task.Rev),
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

func (r *taskRepository) Delete(ctx context.Context, workspaceID string, id types.TaskID) error {
	docRef := r.col(workspaceID).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(interfaces.ErrNotFound, "task not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get task", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete task", goerr.V("id", id))
	}

	return nil
}
