package usecase

import (
	"context"
	"sync"

	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
)

// RecordingSink captures emitted notifications for assertions
type RecordingSink struct {
	mu     sync.Mutex
	events []SinkEvent
}

type SinkEvent struct {
	WorkspaceID string
	UserID      types.UserID
	Type        types.NotificationType
	Message     string
	RelatedID   string
}

func (s *RecordingSink) Emit(ctx context.Context, workspaceID string, userID types.UserID, eventType types.NotificationType, message string, relatedID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, SinkEvent{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Type:        eventType,
		Message:     message,
		RelatedID:   relatedID,
	})
}

func (s *RecordingSink) Events() []SinkEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SinkEvent(nil), s.events...)
}

func (s *RecordingSink) EventsFor(userID types.UserID) []SinkEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []SinkEvent
	for _, e := range s.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}
