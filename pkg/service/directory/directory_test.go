package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/repository/memory"
	"github.com/opsdesk-lab/teamboard/pkg/service/directory"
)

const wsID = "test-ws"

func newRegistry() *model.WorkspaceRegistry {
	registry := model.NewWorkspaceRegistry()
	registry.Register(&model.WorkspaceEntry{
		Workspace: model.Workspace{ID: wsID, Name: "Test Workspace"},
		Members: []model.Member{
			{ID: "U-CFG", Name: "carol", RealName: "Carol Chen", Email: "carol@example.com"},
		},
	})
	return registry
}

func TestDirectoryLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot entry wins", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Member().SaveMany(ctx, wsID, []*model.Member{
			{ID: "U1", Name: "alice", RealName: "Alice Adams", UpdatedAt: time.Now()},
		}))

		dir := directory.New(repo, newRegistry())

		member, err := dir.Lookup(ctx, wsID, "U1")
		gt.NoError(t, err).Required()
		gt.V(t, member.DisplayName()).Equal("Alice Adams")
	})

	t.Run("roster fallback", func(t *testing.T) {
		dir := directory.New(memory.New(), newRegistry())

		member, err := dir.Lookup(ctx, wsID, "U-CFG")
		gt.NoError(t, err).Required()
		gt.V(t, member.RealName).Equal("Carol Chen")
	})

	t.Run("unknown user", func(t *testing.T) {
		dir := directory.New(memory.New(), newRegistry())

		_, err := dir.Lookup(ctx, wsID, types.UserID("U-MISSING"))
		gt.Error(t, err)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		dir := directory.New(memory.New(), newRegistry())

		_, err := dir.Lookup(ctx, "other-ws", "U-CFG")
		gt.Error(t, err)
	})
}

func TestDirectoryList(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot preferred over roster", func(t *testing.T) {
		repo := memory.New()
		gt.NoError(t, repo.Member().SaveMany(ctx, wsID, []*model.Member{
			{ID: "U1", Name: "alice"},
			{ID: "U2", Name: "bob"},
		}))

		dir := directory.New(repo, newRegistry())

		members, err := dir.List(ctx, wsID)
		gt.NoError(t, err).Required()
		gt.A(t, members).Length(2)
	})

	t.Run("empty snapshot falls back to roster", func(t *testing.T) {
		dir := directory.New(memory.New(), newRegistry())

		members, err := dir.List(ctx, wsID)
		gt.NoError(t, err).Required()
		gt.A(t, members).Length(1)
		gt.V(t, members[0].ID).Equal(types.UserID("U-CFG"))
	})
}
