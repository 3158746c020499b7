package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdMigrate() *cli.Command {
	var projectID string
	var databaseID string
	var dryRun bool

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Migrate Firestore indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "firestore-project-id",
				Usage:       "Firestore Project ID (required)",
				Required:    true,
				Sources:     cli.EnvVars("TEAMBOARD_FIRESTORE_PROJECT_ID"),
				Destination: &projectID,
			},
			&cli.StringFlag{
				Name:        "firestore-database-id",
				Usage:       "Firestore Database ID",
				Sources:     cli.EnvVars("TEAMBOARD_FIRESTORE_DATABASE_ID"),
				Destination: &databaseID,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Print the desired index configuration without applying",
				Destination: &dryRun,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			logger.Info("Migrate configuration",
				"projectID", projectID,
				"databaseID", databaseID,
				"dryRun", dryRun)

			// Get index configuration
			indexConfig := getIndexConfig()

			if dryRun {
				logger.Info("Dry run mode - desired index configuration")
				for _, collection := range indexConfig.Collections {
					for _, index := range collection.Indexes {
						fields := make([]string, 0, len(index.Fields))
						for _, f := range index.Fields {
							fields = append(fields, fmt.Sprintf("%s %v", f.Path, f.Order))
						}
						logger.Info("Index",
							"collection", collection.Name,
							"fields", fields)
					}
				}
				return nil
			}

			client, err := fireconf.New(ctx, projectID, databaseID, indexConfig)
			if err != nil {
				return goerr.Wrap(err, "failed to create fireconf client")
			}

			logger.Info("Applying migrations")
			if err := client.Migrate(ctx); err != nil {
				return goerr.Wrap(err, "failed to apply migrations")
			}
			logger.Info("Migrations applied successfully")

			return nil
		},
	}
}

// getIndexConfig returns the Firestore index configuration. Entity documents
// live in per-workspace subcollections all named "items", so the composite
// indexes are declared once against that collection group.
func getIndexConfig() *fireconf.Config {
	return &fireconf.Config{
		Collections: []fireconf.Collection{
			{
				Name: "items",
				Indexes: []fireconf.Index{
					// notifications ListByUser: UserID ASC, Read ASC, CreatedAt DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "UserID", Order: fireconf.OrderAscending},
							{Path: "Read", Order: fireconf.OrderAscending},
							{Path: "CreatedAt", Order: fireconf.OrderDescending},
						},
					},
					// tasks ListByReceiver: ReceiverID ASC, CreatedAt DESC
					{
						Fields: []fireconf.IndexField{
							{Path: "ReceiverID", Order: fireconf.OrderAscending},
							{Path: "CreatedAt", Order: fireconf.OrderDescending},
						},
					},
				},
			},
		},
	}
}
