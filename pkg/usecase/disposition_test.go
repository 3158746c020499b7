package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
)

func createDisposition(t *testing.T, uc *usecase.UseCases) types.DispositionID {
	t.Helper()
	created, err := uc.Disposition.Create(context.Background(), wsID, usecase.CreateDispositionInput{
		Title:       "Rotate on-call credentials",
		GiverNames:  []string{"Security Desk"},
		ReceiverIDs: []types.UserID{"U1", "U2"},
		CreatedBy:   "U-ADM",
	})
	gt.NoError(t, err).Required()
	return created.ID
}

func TestDispositionCreate(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	t.Run("title and receivers required", func(t *testing.T) {
		_, err := uc.Disposition.Create(ctx, wsID, usecase.CreateDispositionInput{
			ReceiverIDs: []types.UserID{"U1"},
		})
		gt.Error(t, err).Is(usecase.ErrValidation)

		_, err = uc.Disposition.Create(ctx, wsID, usecase.CreateDispositionInput{
			Title: "x",
		})
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("defaults", func(t *testing.T) {
		created, err := uc.Disposition.Create(ctx, wsID, usecase.CreateDispositionInput{
			Title:       "Rotate on-call credentials",
			ReceiverIDs: []types.UserID{"U1"},
		})
		gt.NoError(t, err).Required()
		gt.V(t, created.Status).Equal(types.DispositionStatusActive)
		gt.B(t, created.Active).True()
		gt.B(t, created.ReceivedDate.IsZero()).False()
	})
}

func TestDispositionUpdate(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()
	id := createDisposition(t, uc)

	title := "Rotate all shared credentials"
	status := types.DispositionStatusPending
	updated, err := uc.Disposition.Update(ctx, wsID, id, "U-ED", usecase.UpdateDispositionInput{
		Title:  &title,
		Status: &status,
	})
	gt.NoError(t, err).Required()
	gt.V(t, updated.Title).Equal(title)
	gt.V(t, updated.Status).Equal(types.DispositionStatusPending)
	gt.V(t, updated.LastEditedBy).Equal(types.UserID("U-ED"))
	gt.V(t, updated.LastEditedAt).NotNil()
}

func TestDispositionFillers(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()

	t.Run("empty content rejected", func(t *testing.T) {
		id := createDisposition(t, uc)
		_, err := uc.Disposition.AddFiller(ctx, wsID, id, "U1", "")
		gt.Error(t, err).Is(usecase.ErrValidation)
	})

	t.Run("append then positional removal", func(t *testing.T) {
		id := createDisposition(t, uc)

		_, err := uc.Disposition.AddFiller(ctx, wsID, id, "U1", "rotated vault token")
		gt.NoError(t, err).Required()
		withTwo, err := uc.Disposition.AddFiller(ctx, wsID, id, "U2", "rotated pager key")
		gt.NoError(t, err).Required()
		gt.A(t, withTwo.Fillers).Length(2)

		withOne, err := uc.Disposition.RemoveFiller(ctx, wsID, id, "U-ADM", 0)
		gt.NoError(t, err).Required()
		gt.A(t, withOne.Fillers).Length(1)
		gt.V(t, withOne.Fillers[0].Content).Equal("rotated pager key")
	})

	t.Run("index out of range", func(t *testing.T) {
		id := createDisposition(t, uc)
		_, err := uc.Disposition.RemoveFiller(ctx, wsID, id, "U-ADM", 0)
		gt.Error(t, err).Is(usecase.ErrFillerIndexOutOfRange)
		_, err = uc.Disposition.RemoveFiller(ctx, wsID, id, "U-ADM", -1)
		gt.Error(t, err).Is(usecase.ErrFillerIndexOutOfRange)
	})
}

func TestDispositionSoftDelete(t *testing.T) {
	uc, _ := newUseCases(t)
	ctx := context.Background()
	id := createDisposition(t, uc)

	gt.NoError(t, uc.Disposition.Delete(ctx, wsID, id, "U-ADM"))

	// Still readable directly, gone from the default listing
	d, err := uc.Disposition.Get(ctx, wsID, id)
	gt.NoError(t, err).Required()
	gt.B(t, d.Active).False()

	visible, err := uc.Disposition.List(ctx, wsID, false)
	gt.NoError(t, err).Required()
	for _, item := range visible {
		gt.V(t, item.ID).NotEqual(id)
	}

	all, err := uc.Disposition.List(ctx, wsID, true)
	gt.NoError(t, err).Required()
	found := false
	for _, item := range all {
		if item.ID == id {
			found = true
		}
	}
	gt.B(t, found).True()
}
