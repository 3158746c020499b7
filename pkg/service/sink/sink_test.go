package sink_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/repository/memory"
	"github.com/opsdesk-lab/teamboard/pkg/service/sink"
	"github.com/opsdesk-lab/teamboard/pkg/service/slack"
)

const wsID = "test-ws"

type dmRecorder struct {
	mu  sync.Mutex
	dms []string
}

func (r *dmRecorder) GetUserInfo(ctx context.Context, userID string) (*slack.User, error) {
	return nil, nil
}

func (r *dmRecorder) ListUsers(ctx context.Context) ([]*slack.User, error) {
	return nil, nil
}

func (r *dmRecorder) PostDirectMessage(ctx context.Context, userID string, text string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dms = append(r.dms, userID+": "+text)
	return "1234.5678", nil
}

func (r *dmRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dms)
}

func TestSinkEmit(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a notification record", func(t *testing.T) {
		repo := memory.New()
		s := sink.New(repo)

		s.Emit(ctx, wsID, "U1", types.NotificationTaskAssigned, "New task", "task-1")

		list, err := repo.Notification().ListByUser(ctx, wsID, "U1")
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1)
		gt.V(t, list[0].Type).Equal(types.NotificationTaskAssigned)
		gt.V(t, list[0].RelatedID).Equal("task-1")
		gt.B(t, list[0].Read).False()
	})

	t.Run("mirrors the record as a DM when slack is wired", func(t *testing.T) {
		repo := memory.New()
		recorder := &dmRecorder{}
		s := sink.New(repo, sink.WithSlack(recorder))

		s.Emit(ctx, wsID, "U1", types.NotificationRequestCreated, "New request", "req-1")

		deadline := time.Now().Add(time.Second)
		for recorder.count() == 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		gt.N(t, recorder.count()).Equal(1)
	})
}
