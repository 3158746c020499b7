package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/interfaces"
	"github.com/opsdesk-lab/teamboard/pkg/repository/firestore"
	"github.com/opsdesk-lab/teamboard/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

// Repository selects and builds the persistence backend.
type Repository struct {
	backend          string
	projectID        string
	databaseID       string
	collectionPrefix string
}

func (x *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend (memory, firestore)",
			Category:    "Repository",
			Value:       "memory",
			Destination: &x.backend,
			Sources:     cli.EnvVars("TEAMBOARD_REPOSITORY_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID",
			Category:    "Repository",
			Destination: &x.projectID,
			Sources:     cli.EnvVars("TEAMBOARD_FIRESTORE_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Destination: &x.databaseID,
			Sources:     cli.EnvVars("TEAMBOARD_FIRESTORE_DATABASE_ID"),
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix for Firestore collection names (for sharing one database)",
			Category:    "Repository",
			Destination: &x.collectionPrefix,
			Sources:     cli.EnvVars("TEAMBOARD_FIRESTORE_COLLECTION_PREFIX"),
		},
	}
}

func (x Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("project-id", x.projectID),
		slog.String("database-id", x.databaseID),
		slog.String("collection-prefix", x.collectionPrefix),
	)
}

// Configure builds the repository selected by the backend flag.
func (x *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch x.backend {
	case "memory", "":
		return memory.New(), nil

	case "firestore":
		if x.projectID == "" {
			return nil, goerr.Wrap(ErrMissingProjectID, "firestore backend selected")
		}
		var opts []firestore.Option
		if x.collectionPrefix != "" {
			opts = append(opts, firestore.WithCollectionPrefix(x.collectionPrefix))
		}
		repo, err := firestore.New(ctx, x.projectID, x.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize Firestore repository")
		}
		return repo, nil

	default:
		return nil, goerr.Wrap(ErrUnknownBackend, "unsupported repository backend", goerr.V("backend", x.backend))
	}
}
