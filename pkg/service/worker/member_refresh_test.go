package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/repository/memory"
	"github.com/opsdesk-lab/teamboard/pkg/service/slack"
	"github.com/opsdesk-lab/teamboard/pkg/service/worker"
)

// mockSlackService is a mock implementation of slack.Service for testing
type mockSlackService struct {
	mu             sync.RWMutex
	users          []*slack.User
	listUsersError error
}

func (m *mockSlackService) setUsers(users []*slack.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = users
}

func (m *mockSlackService) setListUsersError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listUsersError = err
}

func (m *mockSlackService) ListUsers(ctx context.Context) ([]*slack.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listUsersError != nil {
		return nil, m.listUsersError
	}

	result := make([]*slack.User, len(m.users))
	for i, u := range m.users {
		userCopy := *u
		result[i] = &userCopy
	}
	return result, nil
}

func (m *mockSlackService) GetUserInfo(ctx context.Context, userID string) (*slack.User, error) {
	return nil, nil
}

func (m *mockSlackService) PostDirectMessage(ctx context.Context, userID string, text string) (string, error) {
	return "", nil
}

func TestMemberRefresh(t *testing.T) {
	const wsID = "test-ws"
	ctx := context.Background()

	t.Run("initial sync populates snapshot and metadata", func(t *testing.T) {
		repo := memory.New()
		mock := &mockSlackService{}
		mock.setUsers([]*slack.User{
			{ID: "U1", Name: "alice", RealName: "Alice Adams", Email: "alice@example.com"},
			{ID: "U2", Name: "bob", RealName: "Bob Brown"},
		})

		w := worker.NewMemberRefreshWorker(repo, mock, []string{wsID}, time.Hour)
		gt.NoError(t, w.Start(ctx))
		defer w.Stop()

		gt.B(t, waitFor(func() bool {
			list, err := repo.Member().List(ctx, wsID)
			return err == nil && len(list) == 2
		})).True()

		member, err := repo.Member().Get(ctx, wsID, types.UserID("U1"))
		gt.NoError(t, err).Required()
		gt.V(t, member.RealName).Equal("Alice Adams")

		meta, err := repo.Member().GetMetadata(ctx, wsID)
		gt.NoError(t, err).Required()
		gt.N(t, meta.MemberCount).Equal(2)
		gt.B(t, meta.LastRefreshSuccess.IsZero()).False()
	})

	t.Run("API failure preserves old snapshot", func(t *testing.T) {
		repo := memory.New()
		mock := &mockSlackService{}
		mock.setUsers([]*slack.User{{ID: "U1", Name: "alice"}})

		w := worker.NewMemberRefreshWorker(repo, mock, []string{wsID}, 20*time.Millisecond)
		gt.NoError(t, w.Start(ctx))
		defer w.Stop()

		gt.B(t, waitFor(func() bool {
			list, err := repo.Member().List(ctx, wsID)
			return err == nil && len(list) == 1
		})).True()

		mock.setListUsersError(goerr.New("slack is down"))
		time.Sleep(60 * time.Millisecond)

		list, err := repo.Member().List(ctx, wsID)
		gt.NoError(t, err).Required()
		gt.A(t, list).Length(1)

		meta, err := repo.Member().GetMetadata(ctx, wsID)
		gt.NoError(t, err).Required()
		gt.B(t, meta.LastRefreshAttempt.After(meta.LastRefreshSuccess)).True()
	})

	t.Run("refresh replaces removed users", func(t *testing.T) {
		repo := memory.New()
		mock := &mockSlackService{}
		mock.setUsers([]*slack.User{
			{ID: "U1", Name: "alice"},
			{ID: "U2", Name: "bob"},
		})

		w := worker.NewMemberRefreshWorker(repo, mock, []string{wsID}, 20*time.Millisecond)
		gt.NoError(t, w.Start(ctx))
		defer w.Stop()

		gt.B(t, waitFor(func() bool {
			list, err := repo.Member().List(ctx, wsID)
			return err == nil && len(list) == 2
		})).True()

		mock.setUsers([]*slack.User{{ID: "U1", Name: "alice"}})

		gt.B(t, waitFor(func() bool {
			list, err := repo.Member().List(ctx, wsID)
			return err == nil && len(list) == 1
		})).True()
	})
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}
