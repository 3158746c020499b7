package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/opsdesk-lab/teamboard/pkg/cli/config"
	httpctrl "github.com/opsdesk-lab/teamboard/pkg/controller/http"
	"github.com/opsdesk-lab/teamboard/pkg/service/directory"
	"github.com/opsdesk-lab/teamboard/pkg/service/mailer"
	"github.com/opsdesk-lab/teamboard/pkg/service/sink"
	"github.com/opsdesk-lab/teamboard/pkg/service/worker"
	"github.com/opsdesk-lab/teamboard/pkg/usecase"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
	"github.com/opsdesk-lab/teamboard/pkg/utils/safe"
)

func cmdServe() *cli.Command {
	var addr string
	var mailDelay time.Duration
	var refreshInterval time.Duration
	var appCfg config.App
	var repoCfg config.Repository
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TEAMBOARD_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "mail-delay",
			Usage:       "Simulated delivery delay of the email gateway",
			Value:       mailer.DefaultDelay,
			Sources:     cli.EnvVars("TEAMBOARD_MAIL_DELAY"),
			Destination: &mailDelay,
		},
		&cli.DurationFlag{
			Name:        "member-refresh-interval",
			Usage:       "Interval of the Slack member directory sync",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("TEAMBOARD_MEMBER_REFRESH_INTERVAL"),
			Destination: &refreshInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Load workspace configurations and build registry
			_, registry, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load workspace configurations")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			// Initialize Slack service if bot token is provided
			slackSvc, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize slack service")
			}

			// Notification sink: persists notifications and mirrors them to
			// Slack DM when the integration is configured
			sinkOpts := []sink.Option{}
			if slackSvc != nil {
				sinkOpts = append(sinkOpts, sink.WithSlack(slackSvc))
				logging.Default().Info("Slack DM notifications enabled")
			} else {
				logging.Default().Info("Slack Bot Token not configured, notifications stay in-app only")
			}
			notifier := sink.New(repo, sinkOpts...)

			// Member directory: repository snapshot with the configured
			// roster as fallback
			dir := directory.New(repo, registry)

			// Email gateway for meeting invitations
			mailGateway := mailer.NewSimulated(mailer.WithDelay(mailDelay))

			uc := usecase.New(repo,
				usecase.WithNotificationSink(notifier),
				usecase.WithUserDirectory(dir),
				usecase.WithEmailGateway(mailGateway),
			)

			// Start the member refresh worker if the Slack service is
			// available. Refresh uses DeleteAll followed by SaveMany to keep
			// the snapshot write a single batch per workspace.
			var refreshWorker *worker.MemberRefreshWorker
			if slackSvc != nil {
				workspaceIDs := make([]string, 0)
				for _, ws := range registry.Workspaces() {
					workspaceIDs = append(workspaceIDs, ws.ID)
				}
				refreshWorker = worker.NewMemberRefreshWorker(repo, slackSvc, workspaceIDs, refreshInterval)
				if err := refreshWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start member refresh worker")
				}
			}

			// Create HTTP server
			srv := httpctrl.New(uc,
				httpctrl.WithWorkspaceRegistry(registry),
				httpctrl.WithUserDirectory(dir),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop the member refresh worker first
				if refreshWorker != nil {
					refreshWorker.Stop()
				}

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
