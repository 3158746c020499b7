package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/opsdesk-lab/teamboard/pkg/domain/model"
	"github.com/opsdesk-lab/teamboard/pkg/domain/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// AppConfig represents the workspace configuration file
type AppConfig struct {
	Workspaces []WorkspaceConfig `toml:"workspace"`
}

// WorkspaceConfig represents a single workspace and its static member roster
type WorkspaceConfig struct {
	ID      string         `toml:"id"`
	Name    string         `toml:"name"`
	Members []MemberConfig `toml:"member"`
}

// MemberConfig represents a roster entry. The roster serves as the directory
// source for workspaces without a Slack integration.
type MemberConfig struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	RealName string `toml:"real_name"`
	Email    string `toml:"email"`
	Position string `toml:"position"`
}

// Validate checks if the MemberConfig is valid
func (m *MemberConfig) Validate() error {
	if m.ID == "" {
		return goerr.Wrap(ErrInvalidConfig, "member ID is required")
	}
	if m.Name == "" && m.RealName == "" {
		return goerr.Wrap(ErrMissingName, "member needs a name or real_name", goerr.V("id", m.ID))
	}
	return nil
}

// Validate checks if the WorkspaceConfig is valid
func (w *WorkspaceConfig) Validate() error {
	if w.ID == "" {
		return goerr.Wrap(ErrMissingWorkspaceID, "workspace entry without ID")
	}
	if w.Name == "" {
		return goerr.Wrap(ErrMissingName, "workspace name is required", goerr.V("id", w.ID))
	}

	memberIDs := make(map[string]bool)
	for _, m := range w.Members {
		if err := m.Validate(); err != nil {
			return goerr.Wrap(err, "invalid member", goerr.V("workspace_id", w.ID))
		}
		if memberIDs[m.ID] {
			return goerr.Wrap(ErrDuplicateMember, "member listed twice",
				goerr.V("workspace_id", w.ID), goerr.V("member_id", m.ID))
		}
		memberIDs[m.ID] = true
	}

	return nil
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if len(a.Workspaces) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one workspace is required")
	}

	workspaceIDs := make(map[string]bool)
	for _, w := range a.Workspaces {
		if err := w.Validate(); err != nil {
			return goerr.Wrap(err, "invalid workspace")
		}
		if workspaceIDs[w.ID] {
			return goerr.Wrap(ErrDuplicateWorkspace, "workspace listed twice", goerr.V("id", w.ID))
		}
		workspaceIDs[w.ID] = true
	}

	return nil
}

// Registry converts the configuration into a WorkspaceRegistry
func (a *AppConfig) Registry() *model.WorkspaceRegistry {
	registry := model.NewWorkspaceRegistry()
	for _, w := range a.Workspaces {
		members := make([]model.Member, len(w.Members))
		for i, m := range w.Members {
			members[i] = model.Member{
				ID:       types.UserID(m.ID),
				Name:     m.Name,
				RealName: m.RealName,
				Email:    m.Email,
				Position: m.Position,
			}
		}
		registry.Register(&model.WorkspaceEntry{
			Workspace: model.Workspace{ID: w.ID, Name: w.Name},
			Members:   members,
		})
	}
	return registry
}

// LoadAppConfiguration loads the workspace configuration from a TOML file
func LoadAppConfiguration(path string) (*AppConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "workspace config not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var config AppConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return &config, nil
}

// App holds the path to the workspace configuration file
type App struct {
	workspaceConfigPath string
}

func (x *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "workspace-config",
			Usage:       "Path to the workspace configuration TOML file",
			Category:    "Workspace",
			Required:    true,
			Destination: &x.workspaceConfigPath,
			Sources:     cli.EnvVars("TEAMBOARD_WORKSPACE_CONFIG"),
		},
	}
}

// Configure loads and validates the workspace configuration
func (x *App) Configure() (*AppConfig, *model.WorkspaceRegistry, error) {
	cfg, err := LoadAppConfiguration(x.workspaceConfigPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Registry(), nil
}
