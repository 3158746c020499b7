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

func sampleDisposition() *model.Disposition {
	return &model.Disposition{
		Title:         "Patch edge routers",
		GiverNames:    []string{"NOC Duty Desk"},
		ReceiverIDs:   []types.UserID{"U1", "U2"},
		ReceiverNames: []string{"U1", "U2"},
		Status:        types.DispositionStatusActive,
		Link:          "https://a.example.com|https://b.example.com",
		ReceivedDate:  time.Now().UTC().Truncate(time.Second),
		Active:        true,
	}
}

func runDispositionRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip fill log", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		d := sampleDisposition()
		d.Fillers = []model.Filler{
			{UserID: "U1", UserName: "U1", FilledAt: time.Now().UTC(), Content: "rebooted rtr-01"},
		}
		created, err := repo.Disposition().Create(ctx, wsID, d)
		gt.NoError(t, err).Required()
		gt.V(t, created.ID).NotEqual(types.DispositionID(""))

		retrieved, err := repo.Disposition().Get(ctx, wsID, created.ID)
		gt.NoError(t, err).Required()
		gt.A(t, retrieved.Fillers).Length(1)
		gt.V(t, retrieved.Fillers[0].Content).Equal("rebooted rtr-01")
		gt.B(t, retrieved.Active).True()
	})

	t.Run("List filters soft-deleted records", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		ws := uniqueWS()

		active, err := repo.Disposition().Create(ctx, ws, sampleDisposition())
		gt.NoError(t, err).Required()

		retired := sampleDisposition()
		retired.Active = false
		_, err = repo.Disposition().Create(ctx, ws, retired)
		gt.NoError(t, err).Required()

		visible, err := repo.Disposition().List(ctx, ws, false)
		gt.NoError(t, err).Required()
		gt.A(t, visible).Length(1)
		gt.V(t, visible[0].ID).Equal(active.ID)

		all, err := repo.Disposition().List(ctx, ws, true)
		gt.NoError(t, err).Required()
		gt.A(t, all).Length(2)
	})

	t.Run("Update appends filler under CAS", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Disposition().Create(ctx, wsID, sampleDisposition())
		gt.NoError(t, err).Required()

		created.Fillers = append(created.Fillers, model.Filler{
			UserID: "U2", UserName: "U2", FilledAt: time.Now().UTC(), Content: "verified uplink",
		})
		updated, err := repo.Disposition().Update(ctx, wsID, created)
		gt.NoError(t, err).Required()
		gt.A(t, updated.Fillers).Length(1)

		stale := *created
		_, err = repo.Disposition().Update(ctx, wsID, &stale)
		gt.Error(t, err).Is(interfaces.ErrRevisionMismatch)
	})

	t.Run("Get unknown ID returns not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Disposition().Get(ctx, wsID, types.NewDispositionID())
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})
}

func TestDispositionRepository_Memory(t *testing.T) {
	runDispositionRepositoryTest(t, newMemoryRepo)
}

func TestDispositionRepository_Firestore(t *testing.T) {
	runDispositionRepositoryTest(t, newFirestoreRepo)
}
