package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.App

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate workspace configuration files",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, registry, err := appCfg.Configure()
			if err != nil {
				color.Red("✗ configuration validation failed")
				return goerr.Wrap(err, "configuration validation failed")
			}

			color.Green("✓ configuration valid (%d workspaces)", len(cfg.Workspaces))
			for _, entry := range registry.List() {
				fmt.Printf("  %s %s (%d members)\n",
					color.CyanString(entry.Workspace.ID),
					entry.Workspace.Name,
					len(entry.Members),
				)
			}

			return nil
		},
	}
}
