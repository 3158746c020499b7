package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
)

// Firestore is the production repository. Each entity type lives in its own
// collection; documents are keyed by entity ID and grouped per workspace.
type Firestore struct {
	client       *firestore.Client
	task         *taskRepository
	request      *requestRepository
	disposition  *dispositionRepository
	meeting      *meetingRepository
	notification *notificationRepository
	member       *memberRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, used to share one database
// between environments
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.task.collectionPrefix = prefix
		f.request.collectionPrefix = prefix
		f.disposition.collectionPrefix = prefix
		f.meeting.collectionPrefix = prefix
		f.notification.collectionPrefix = prefix
		f.member.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:       client,
		task:         newTaskRepository(client),
		request:      newRequestRepository(client),
		disposition:  newDispositionRepository(client),
		meeting:      newMeetingRepository(client),
		notification: newNotificationRepository(client),
		member:       newMemberRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Request() interfaces.RequestRepository {
	return f.request
}

func (f *Firestore) Disposition() interfaces.DispositionRepository {
	return f.disposition
}

func (f *Firestore) Meeting() interfaces.MeetingRepository {
	return f.meeting
}

func (f *Firestore) Notification() interfaces.NotificationRepository {
	return f.notification
}

func (f *Firestore) Member() interfaces.MemberRepository {
	return f.member
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

// collectionName joins an optional prefix with the base collection name
func collectionName(prefix, base string) string {
	if prefix != "" {
		return prefix + "_" + base
	}
	return base
}
