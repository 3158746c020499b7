package worker

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/opsdesk-lab/teamboard/pkg/service/slack"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentRefreshes bounds parallel Slack API calls across workspaces
const maxConcurrentRefreshes = 4

// MemberRefreshWorker keeps each workspace's member directory snapshot in sync
// with the Slack user list.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type MemberRefreshWorker struct {
	repo         interfaces.Repository
	slackService slack.Service
	workspaces   []string
	interval     time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
}

// NewMemberRefreshWorker creates a new worker for refreshing member snapshots
func NewMemberRefreshWorker(repo interfaces.Repository, slackSvc slack.Service, workspaces []string, interval time.Duration) *MemberRefreshWorker {
	return &MemberRefreshWorker{
		repo:         repo,
		slackService: slackSvc,
		workspaces:   workspaces,
		interval:     interval,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}
}

// Start begins the background refresh loop. The initial sync and periodic
// refresh both run in a goroutine and do not block server startup.
func (w *MemberRefreshWorker) Start(ctx context.Context) error {
	logging.Default().Info("member refresh worker starting",
		"interval", w.interval.String(),
		"workspaces", len(w.workspaces))

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *MemberRefreshWorker) Stop() {
	logging.Default().Info("member refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("member refresh worker stopped")
}

func (w *MemberRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	w.refreshAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.refreshAll(ctx)

		case <-w.stopCh:
			logging.Default().Info("member refresh worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("member refresh worker context cancelled")
			return
		}
	}
}

func (w *MemberRefreshWorker) refreshAll(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRefreshes)

	for _, workspaceID := range w.workspaces {
		g.Go(func() error {
			if err := w.refresh(ctx, workspaceID); err != nil {
				// Log error but continue worker; stale snapshot stays usable
				logging.Default().Error("member refresh failed (will retry next interval)",
					"workspace_id", workspaceID,
					"error", err.Error())
			}
			return nil
		})
	}

	_ = g.Wait()
}

// refresh performs a single refresh cycle (Replace strategy: DeleteAll then SaveMany)
func (w *MemberRefreshWorker) refresh(ctx context.Context, workspaceID string) error {
	startTime := time.Now()
	logging.Default().Info("starting member refresh", "workspace_id", workspaceID)

	existing, err := w.repo.Member().GetMetadata(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(err, "failed to get existing metadata")
		}
		existing = &model.DirectoryMetadata{}
	}

	attempt := &model.DirectoryMetadata{
		LastRefreshSuccess: existing.LastRefreshSuccess,
		LastRefreshAttempt: startTime,
		MemberCount:        existing.MemberCount,
	}
	if err := w.repo.Member().PutMetadata(ctx, workspaceID, attempt); err != nil {
		return goerr.Wrap(err, "failed to save refresh attempt metadata")
	}

	slackUsers, err := w.slackService.ListUsers(ctx)
	if err != nil {
		// Preserve the old snapshot on API failure
		return goerr.Wrap(err, "failed to list Slack users from API")
	}

	members := make([]*model.Member, len(slackUsers))
	for i, su := range slackUsers {
		members[i] = &model.Member{
			ID:        types.UserID(su.ID),
			Name:      su.Name,
			RealName:  su.RealName,
			Email:     su.Email,
			Position:  su.Title,
			ImageURL:  su.ImageURL,
			UpdatedAt: startTime,
		}
	}

	// Replace strategy: DeleteAll then SaveMany prevents orphaned records
	if err := w.repo.Member().DeleteAll(ctx, workspaceID); err != nil {
		return goerr.Wrap(err, "failed to delete existing members")
	}

	if err := w.repo.Member().SaveMany(ctx, workspaceID, members); err != nil {
		return goerr.Wrap(err, "failed to save members", goerr.V("count", len(members)))
	}

	success := &model.DirectoryMetadata{
		LastRefreshSuccess: startTime,
		LastRefreshAttempt: startTime,
		MemberCount:        len(members),
	}
	if err := w.repo.Member().PutMetadata(ctx, workspaceID, success); err != nil {
		return goerr.Wrap(err, "failed to save refresh success metadata")
	}

	logging.Default().Info("member refresh completed",
		"workspace_id", workspaceID,
		"count", len(members),
		"duration", time.Since(startTime).String())

	return nil
}
