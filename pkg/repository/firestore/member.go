package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type memberRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newMemberRepository(client *firestore.Client) *memberRepository {
	return &memberRepository{client: client}
}

func (r *memberRepository) col(workspaceID string) *firestore.CollectionRef {
	name := collectionName(r.collectionPrefix, "members")
	return r.client.Collection(name).Doc(workspaceID).Collection("items")
}

func (r *memberRepository) metaDoc(workspaceID string) *firestore.DocumentRef {
	name := collectionName(r.collectionPrefix, "members")
	return r.client.Collection(name).Doc(workspaceID).Collection("meta").Doc("directory")
}

func (r *memberRepository) Get(ctx context.Context, workspaceID string, id types.UserID) (*model.Member, error) {
	docSnap, err := r.col(workspaceID).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "member not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get member", goerr.V("id", id))
	}

	var m model.Member
	if err := docSnap.DataTo(&m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode member", goerr.V("id", id))
	}

	return &m, nil
}

func (r *memberRepository) List(ctx context.Context, workspaceID string) ([]*model.Member, error) {
	iter := r.col(workspaceID).OrderBy("Name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var members []*model.Member
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate members")
		}

		var m model.Member
		if err := docSnap.DataTo(&m); err != nil {
			return nil, goerr.Wrap(err, "failed to decode member", goerr.V("doc_id", docSnap.Ref.ID))
		}

		members = append(members, &m)
	}

	return members, nil
}

func (r *memberRepository) SaveMany(ctx context.Context, workspaceID string, members []*model.Member) error {
	bw := r.client.BulkWriter(ctx)
	for _, m := range members {
		if _, err := bw.Set(r.col(workspaceID).Doc(m.ID.String()), m); err != nil {
			return goerr.Wrap(err, "failed to enqueue member write", goerr.V("id", m.ID))
		}
	}
	bw.End()
	return nil
}

func (r *memberRepository) DeleteAll(ctx context.Context, workspaceID string) error {
	iter := r.col(workspaceID).Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate members")
		}

		if _, err := bw.Delete(docSnap.Ref); err != nil {
			return goerr.Wrap(err, "failed to enqueue member delete", goerr.V("doc_id", docSnap.Ref.ID))
		}
	}
	bw.End()

	return nil
}

func (r *memberRepository) GetMetadata(ctx context.Context, workspaceID string) (*model.DirectoryMetadata, error) {
	docSnap, err := r.metaDoc(workspaceID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "directory metadata not found",
				goerr.V("workspace_id", workspaceID))
		}
		return nil, goerr.Wrap(err, "failed to get directory metadata")
	}

	var meta model.DirectoryMetadata
	if err := docSnap.DataTo(&meta); err != nil {
		return nil, goerr.Wrap(err, "failed to decode directory metadata")
	}

	return &meta, nil
}

func (r *memberRepository) PutMetadata(ctx context.Context, workspaceID string, meta *model.DirectoryMetadata) error {
	if _, err := r.metaDoc(workspaceID).Set(ctx, meta); err != nil {
		return goerr.Wrap(err, "failed to put directory metadata")
	}
	return nil
}
