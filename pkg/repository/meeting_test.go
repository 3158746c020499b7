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

func sampleMeeting(start time.Time) *model.Meeting {
	return &model.Meeting{
		Title:          "Weekly sync",
		StartTime:      start,
		EndTime:        start.Add(30 * time.Minute),
		ParticipantIDs: []types.UserID{"U1", "U2"},
		Location:       "Room B",
		CreatedBy:      "U1",
	}
}

func runMeetingRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Second)
		created, err := repo.Meeting().Create(ctx, wsID, sampleMeeting(base))
		gt.NoError(t, err).Required()
		gt.V(t, created.ID).NotEqual(types.MeetingID(""))

		retrieved, err := repo.Meeting().Get(ctx, wsID, created.ID)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved.Title).Equal("Weekly sync")
		gt.A(t, retrieved.ParticipantIDs).Length(2)
	})

	t.Run("List orders by start time ascending", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		ws := uniqueWS()

		base := time.Now().UTC().Truncate(time.Second)
		late, err := repo.Meeting().Create(ctx, ws, sampleMeeting(base.Add(2*time.Hour)))
		gt.NoError(t, err).Required()
		early, err := repo.Meeting().Create(ctx, ws, sampleMeeting(base))
		gt.NoError(t, err).Required()

		meetings, err := repo.Meeting().List(ctx, ws)
		gt.NoError(t, err).Required()
		gt.A(t, meetings).Length(2)
		gt.V(t, meetings[0].ID).Equal(early.ID)
		gt.V(t, meetings[1].ID).Equal(late.ID)
	})

	t.Run("Update reschedules under CAS", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Second)
		created, err := repo.Meeting().Create(ctx, wsID, sampleMeeting(base))
		gt.NoError(t, err).Required()

		created.StartTime = base.Add(time.Hour)
		created.EndTime = base.Add(90 * time.Minute)
		created.EmailNotificationSent = true
		updated, err := repo.Meeting().Update(ctx, wsID, created)
		gt.NoError(t, err).Required()
		gt.B(t, updated.EmailNotificationSent).True()

		stale := *created
		_, err = repo.Meeting().Update(ctx, wsID, &stale)
		gt.Error(t, err).Is(interfaces.ErrRevisionMismatch)
	})

	t.Run("Delete removes meeting", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Meeting().Create(ctx, wsID, sampleMeeting(time.Now().UTC()))
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Meeting().Delete(ctx, wsID, created.ID))

		_, err = repo.Meeting().Get(ctx, wsID, created.ID)
		gt.Error(t, err).Is(interfaces.ErrNotFound)

		gt.Error(t, repo.Meeting().Delete(ctx, wsID, created.ID)).Is(interfaces.ErrNotFound)
	})
}

func TestMeetingRepository_Memory(t *testing.T) {
	runMeetingRepositoryTest(t, newMemoryRepo)
}

func TestMeetingRepository_Firestore(t *testing.T) {
	runMeetingRepositoryTest(t, newFirestoreRepo)
}
