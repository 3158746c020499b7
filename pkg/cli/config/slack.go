package config

import (
	"log/slog"

	slacksvc "github.com/opsdesk-lab/teamboard/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the Slack integration settings
type Slack struct {
	botToken string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (for member sync and DM notifications)",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("TEAMBOARD_SLACK_BOT_TOKEN"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
	)
}

// IsConfigured checks if the Slack integration is enabled
func (x *Slack) IsConfigured() bool {
	return x.botToken != ""
}

// Configure creates a Slack service, or returns nil when no token is set
func (x *Slack) Configure() (slacksvc.Service, error) {
	if !x.IsConfigured() {
		return nil, nil
	}
	return slacksvc.New(x.botToken)
}
