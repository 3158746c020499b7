package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/utils/keylock"
)

type DispositionUseCase struct {
	repo      interfaces.Repository
	directory interfaces.UserDirectory
	locks     *keylock.KeyLock
}

func NewDispositionUseCase(repo interfaces.Repository, directory interfaces.UserDirectory, locks *keylock.KeyLock) *DispositionUseCase {
	return &DispositionUseCase{
		repo:      repo,
		directory: directory,
		locks:     locks,
	}
}

// CreateDispositionInput carries the caller-supplied fields for a new disposition
type CreateDispositionInput struct {
	Title        string
	Description  string
	GiverNames   []string
	ReceiverIDs  []types.UserID
	Status       types.DispositionStatus
	Link         string
	Notes        string
	ReceivedDate time.Time
	CreatedBy    types.UserID
}

func (uc *DispositionUseCase) Create(ctx context.Context, workspaceID string, input CreateDispositionInput) (*model.Disposition, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "disposition title is required")
	}
	if len(input.ReceiverIDs) == 0 {
		return nil, goerr.Wrap(ErrValidation, "disposition needs at least one receiver")
	}

	status := input.Status
	if status == "" {
		status = types.DispositionStatusActive
	}
	if !status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid disposition status", goerr.V("status", status))
	}

	receivedDate := input.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = time.Now().UTC()
	}

	d := &model.Disposition{
		Title:        input.Title,
		Description:  input.Description,
		GiverNames:   input.GiverNames,
		ReceiverIDs:  input.ReceiverIDs,
		Status:       status,
		Link:         input.Link,
		Notes:        input.Notes,
		ReceivedDate: receivedDate,
		Active:       true,
	}
	for _, id := range input.ReceiverIDs {
		d.ReceiverNames = append(d.ReceiverNames, resolveName(ctx, uc.directory, workspaceID, id))
	}

	created, err := uc.repo.Disposition().Create(ctx, workspaceID, d)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create disposition")
	}
	return created, nil
}

func (uc *DispositionUseCase) Get(ctx context.Context, workspaceID string, id types.DispositionID) (*model.Disposition, error) {
	d, err := uc.repo.Disposition().Get(ctx, workspaceID, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrDispositionNotFound, "disposition not found", goerr.V("disposition_id", id))
		}
		return nil, goerr.Wrap(err, "failed to get disposition", goerr.V("disposition_id", id))
	}
	return d, nil
}

func (uc *DispositionUseCase) List(ctx context.Context, workspaceID string, includeInactive bool) ([]*model.Disposition, error) {
	list, err := uc.repo.Disposition().List(ctx, workspaceID, includeInactive)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list dispositions")
	}
	return list, nil
}

// UpdateDispositionInput carries optional field patches; nil means leave unchanged
type UpdateDispositionInput struct {
	Title       *string
	Description *string
	GiverNames  []string
	Status      *types.DispositionStatus
	Link        *string
	Notes       *string
}

func (uc *DispositionUseCase) Update(ctx context.Context, workspaceID string, id types.DispositionID, editorID types.UserID, input UpdateDispositionInput) (*model.Disposition, error) {
	if input.Title != nil && *input.Title == "" {
		return nil, goerr.Wrap(ErrValidation, "disposition title cannot be empty")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, goerr.Wrap(ErrValidation, "invalid disposition status", goerr.V("status", *input.Status))
	}

	return uc.mutate(ctx, workspaceID, id, func(d *model.Disposition, now time.Time) error {
		if input.Title != nil {
			d.Title = *input.Title
		}
		if input.Description != nil {
			d.Description = *input.Description
		}
		if input.GiverNames != nil {
			d.GiverNames = input.GiverNames
		}
		if input.Status != nil {
			d.Status = *input.Status
		}
		if input.Link != nil {
			d.Link = *input.Link
		}
		if input.Notes != nil {
			d.Notes = *input.Notes
		}
		d.StampEdit(editorID, now)
		return nil
	})
}

// AddFiller appends an entry to the disposition's fill log
func (uc *DispositionUseCase) AddFiller(ctx context.Context, workspaceID string, id types.DispositionID, userID types.UserID, content string) (*model.Disposition, error) {
	if content == "" {
		return nil, goerr.Wrap(ErrValidation, "filler content is required")
	}

	return uc.mutate(ctx, workspaceID, id, func(d *model.Disposition, now time.Time) error {
		d.Fillers = append(d.Fillers, model.Filler{
			UserID:   userID,
			UserName: resolveName(ctx, uc.directory, workspaceID, userID),
			FilledAt: now,
			Content:  content,
		})
		d.StampEdit(userID, now)
		return nil
	})
}

// RemoveFiller removes a fill log entry by position
func (uc *DispositionUseCase) RemoveFiller(ctx context.Context, workspaceID string, id types.DispositionID, editorID types.UserID, index int) (*model.Disposition, error) {
	return uc.mutate(ctx, workspaceID, id, func(d *model.Disposition, now time.Time) error {
		if index < 0 || index >= len(d.Fillers) {
			return goerr.Wrap(ErrFillerIndexOutOfRange, "cannot remove filler",
				goerr.V("index", index),
				goerr.V("fillers", len(d.Fillers)))
		}
		d.Fillers = append(d.Fillers[:index], d.Fillers[index+1:]...)
		d.StampEdit(editorID, now)
		return nil
	})
}

// Delete retires a disposition. The record stays in storage with Active=false
// and drops out of default listings.
func (uc *DispositionUseCase) Delete(ctx context.Context, workspaceID string, id types.DispositionID, editorID types.UserID) error {
	_, err := uc.mutate(ctx, workspaceID, id, func(d *model.Disposition, now time.Time) error {
		d.Active = false
		d.StampEdit(editorID, now)
		return nil
	})
	return err
}

func (uc *DispositionUseCase) mutate(ctx context.Context, workspaceID string, id types.DispositionID, fn func(d *model.Disposition, now time.Time) error) (*model.Disposition, error) {
	unlock := uc.locks.Lock(workspaceID + "/disposition/" + string(id))
	defer unlock()

	d, err := uc.Get(ctx, workspaceID, id)
	if err != nil {
		return nil, err
	}

	if err := fn(d, time.Now().UTC()); err != nil {
		return nil, err
	}

	updated, err := uc.repo.Disposition().Update(ctx, workspaceID, d)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update disposition", goerr.V("disposition_id", id))
	}
	return updated, nil
}
