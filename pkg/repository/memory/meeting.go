package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

type meetingRepository struct {
	mu       sync.RWMutex
	meetings map[string]map[types.MeetingID]*model.Meeting
}

func newMeetingRepository() *meetingRepository {
	return &meetingRepository{
		meetings: make(map[string]map[types.MeetingID]*model.Meeting),
	}
}

func (r *meetingRepository) ensureWorkspace(workspaceID string) {
	if _, exists := r.meetings[workspaceID]; !exists {
		r.meetings[workspaceID] = make(map[types.MeetingID]*model.Meeting)
	}
}

// copyMeeting creates a deep copy of a meeting
func copyMeeting(m *model.Meeting) *model.Meeting {
	copied := *m
	copied.ParticipantIDs = make([]types.UserID, len(m.ParticipantIDs))
	copy(copied.ParticipantIDs, m.ParticipantIDs)
	return &copied
}

func (r *meetingRepository) Create(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureWorkspace(workspaceID)

	now := time.Now().UTC()
	created := copyMeeting(m)
	if created.ID == "" {
		created.ID = types.NewMeetingID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now
	created.Rev = 1

	r.meetings[workspaceID][created.ID] = created
	return copyMeeting(created), nil
}

func (r *meetingRepository) Get(ctx context.Context, workspaceID string, id types.MeetingID) (*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.meetings[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	m, exists := ws[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	return copyMeeting(m), nil
}

func (r *meetingRepository) List(ctx context.Context, workspaceID string) ([]*model.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, exists := r.meetings[workspaceID]
	if !exists {
		return []*model.Meeting{}, nil
	}

	meetings := make([]*model.Meeting, 0, len(ws))
	for _, m := range ws {
		meetings = append(meetings, copyMeeting(m))
	}

	sort.Slice(meetings, func(i, j int) bool {
		return meetings[i].StartTime.Before(meetings[j].StartTime)
	})

	return meetings, nil
}

func (r *meetingRepository) Update(ctx context.Context, workspaceID string, m *model.Meeting) (*model.Meeting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.meetings[workspaceID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", m.ID))
	}

	existing, exists := ws[m.ID]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", m.ID))
	}

	if existing.Rev != m.Rev {
		return nil, goerr.Wrap(interfaces.ErrRevisionMismatch, "meeting was modified concurrently",
			goerr.V("id", m.ID),
			goerr.V("expected_rev", m.Rev),
			goerr.V("stored_rev", existing.Rev))
	}

	updated := copyMeeting(m)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	updated.Rev = existing.Rev + 1

	r.meetings[workspaceID][updated.ID] = updated
	return copyMeeting(updated), nil
}

func (r *meetingRepository) Delete(ctx context.Context, workspaceID string, id types.MeetingID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, exists := r.meetings[workspaceID]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	if _, exists := ws[id]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "meeting not found", goerr.V("id", id))
	}

	delete(r.meetings[workspaceID], id)
	return nil
}
